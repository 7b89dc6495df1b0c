package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// FetchCustomers reads every customer row of the configured table as a raw record.
// Rows are returned in the order the database yields them. SQL NULL columns become
// nil values so that validation can reject them.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
//
// Returns:
// - A slice of models.Record, one per row.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchCustomers(ctx context.Context) ([]models.Record, error) {
	query, args, err := sq.Select("latitude", "longitude", "user_id", "name").
		From(r.table).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customers query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var (
			latitude, longitude, name pgtype.Text
			userID                    pgtype.Int8
		)
		if errScan := rows.Scan(&latitude, &longitude, &userID, &name); errScan != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", errScan)
		}

		records = append(records, models.Record{
			"latitude":  textValue(latitude),
			"longitude": textValue(longitude),
			"user_id":   int8Value(userID),
			"name":      textValue(name),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Customers fetched from database", "table", r.table, "count", len(records))

	return records, nil
}

func textValue(t pgtype.Text) any {
	if !t.Valid {
		return nil
	}
	return t.String
}

func int8Value(i pgtype.Int8) any {
	if !i.Valid {
		return nil
	}
	return i.Int64
}
