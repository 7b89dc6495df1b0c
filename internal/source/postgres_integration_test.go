//go:build integration

package source_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/customer"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/source"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
	CREATE TABLE customers (
		user_id   BIGINT,
		name      TEXT,
		latitude  TEXT,
		longitude TEXT
	);
	INSERT INTO customers (user_id, name, latitude, longitude) VALUES
		(12, 'Christina McArdle', '52.986375', '-6.043701'),
		(14, 'Helen Cahill', '51.999447', '-9.742744'),
		(39, 'Lisa Ahearn', '53.0033946', '-6.3877505'),
		(NULL, 'Nobody', '53.0033946', '-6.3877505');
`

func TestRead_PostgresContainer(t *testing.T) {
	ctx := t.Context()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("crm"),
		postgres.WithUsername("hermes"),
		postgres.WithPassword("hermes"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, testcontainers.TerminateContainer(container))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, schema)
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	reader := source.NewReader(source.Config{Logger: slog.Default()})
	records := reader.ReadCustomerFile(ctx, dsn)
	require.Len(t, records, 4)

	office := models.Coordinates{Latitude: 53.3381985, Longitude: -6.2592576}
	invitees, stats := customer.SelectWithinDistance(records, office, 100)

	require.Len(t, invitees, 2)
	assert.Equal(t, int64(12), invitees[0].UserID)
	assert.Equal(t, int64(39), invitees[1].UserID)
	assert.Equal(t, customer.Stats{Read: 4, Invalid: 1, OutOfRange: 1, Invited: 2}, stats)
}
