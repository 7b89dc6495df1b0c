package customer_test

import (
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/hermes/internal/customer"
	"github.com/UnknownOlympus/hermes/internal/geo"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var office = models.Coordinates{Latitude: 53.3381985, Longitude: -6.2592576}

func record(lat, lon any, userID any, name any) models.Record {
	return models.Record{"latitude": lat, "longitude": lon, "user_id": userID, "name": name}
}

var (
	lisaAhearn = models.Customer{
		Latitude: "53.0033946", Longitude: "-6.3877505", UserID: 39, Name: "Lisa Ahearn",
	}
	helenCahill = models.Customer{
		Latitude: "51.999447", Longitude: "-9.742744", UserID: 14, Name: "Helen Cahill",
	}
)

func TestIsCustomerValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  models.Record
		want bool
	}{
		{
			name: "valid record",
			rec:  record("53.1489345", "-6.8422408", json.Number("31"), "Alan Behan"),
			want: true,
		},
		{
			name: "valid record with integral float id",
			rec:  record("53.1489345", "-6.8422408", 31.0, "Alan Behan"),
			want: true,
		},
		{
			name: "valid record with int64 id",
			rec:  record("53.1489345", "-6.8422408", int64(31), "Alan Behan"),
			want: true,
		},
		{
			name: "missing latitude",
			rec:  models.Record{"user_id": json.Number("31"), "name": "Alan Behan", "longitude": "-6.8422408"},
			want: false,
		},
		{
			name: "null name",
			rec:  record("51", "-6.8422408", json.Number("31"), nil),
			want: false,
		},
		{
			name: "missing longitude",
			rec:  models.Record{"latitude": "51", "user_id": json.Number("31"), "name": "AB"},
			want: false,
		},
		{
			name: "null user id",
			rec:  record("51", "7", nil, "AB"),
			want: false,
		},
		{
			name: "numeric latitude",
			rec:  record(51.0, "7", json.Number("31"), "AB"),
			want: false,
		},
		{
			name: "text user id",
			rec:  record("51", "7", "31", "AB"),
			want: false,
		},
		{
			name: "fractional user id",
			rec:  record("51", "7", json.Number("31.5"), "AB"),
			want: false,
		},
		{
			name: "nil record",
			rec:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, customer.IsCustomerValid(tt.rec))
		})
	}
}

func TestToCustomer(t *testing.T) {
	t.Parallel()

	got, ok := customer.ToCustomer(record("53.0033946", "-6.3877505", json.Number("39"), "Lisa Ahearn"))

	require.True(t, ok)
	assert.Equal(t, lisaAhearn, got)
}

func TestIsCustomerWithinDistanceOfLocation(t *testing.T) {
	t.Parallel()
	within100km := customer.IsCustomerWithinDistanceOfLocation(office, 100)

	t.Run("customer within distance", func(t *testing.T) {
		t.Parallel()
		assert.True(t, within100km(lisaAhearn))
	})

	t.Run("customer outside distance", func(t *testing.T) {
		t.Parallel()
		assert.False(t, within100km(helenCahill))
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		t.Parallel()
		coords, err := geo.ParseCoordinates(lisaAhearn.Latitude, lisaAhearn.Longitude)
		require.NoError(t, err)
		exact := geo.Distance(office, coords)

		assert.True(t, customer.IsCustomerWithinDistanceOfLocation(office, exact)(lisaAhearn))
		assert.False(t, customer.IsCustomerWithinDistanceOfLocation(office, exact-1e-9)(lisaAhearn))
	})

	t.Run("unparsable coordinates never match", func(t *testing.T) {
		t.Parallel()
		broken := lisaAhearn
		broken.Latitude = "somewhere"

		assert.False(t, within100km(broken))
	})
}

func TestSortByUserID(t *testing.T) {
	t.Parallel()

	assert.Negative(t, customer.SortByUserID(helenCahill, lisaAhearn))
	assert.Positive(t, customer.SortByUserID(lisaAhearn, helenCahill))
	assert.Zero(t, customer.SortByUserID(lisaAhearn, lisaAhearn))
}

func TestSelectWithinDistance(t *testing.T) {
	t.Parallel()

	t.Run("filters and sorts", func(t *testing.T) {
		t.Parallel()
		records := []models.Record{
			record("53.0033946", "-6.3877505", json.Number("39"), "Lisa Ahearn"),
			record("51.999447", "-9.742744", json.Number("14"), "Helen Cahill"),
			record("52.986375", "-6.043701", json.Number("12"), "Christina McArdle"),
			{"latitude": "53.1489345", "name": "Alan Behan"},
			record("53.1489345", "-6.8422408", json.Number("31"), "Alan Behan"),
		}

		invitees, stats := customer.SelectWithinDistance(records, office, 100)

		require.Len(t, invitees, 3)
		assert.Equal(t, []int64{12, 31, 39}, []int64{invitees[0].UserID, invitees[1].UserID, invitees[2].UserID})
		assert.Equal(t, customer.Stats{Read: 5, Invalid: 1, OutOfRange: 1, Invited: 3}, stats)
	})

	t.Run("ties keep source order", func(t *testing.T) {
		t.Parallel()
		records := []models.Record{
			record("53.3381985", "-6.2592576", json.Number("7"), "First"),
			record("53.3381985", "-6.2592576", json.Number("3"), "Lowest"),
			record("53.3381985", "-6.2592576", json.Number("7"), "Second"),
		}

		invitees, _ := customer.SelectWithinDistance(records, office, 1)

		require.Len(t, invitees, 3)
		assert.Equal(t, "Lowest", invitees[0].Name)
		assert.Equal(t, "First", invitees[1].Name)
		assert.Equal(t, "Second", invitees[2].Name)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		invitees, stats := customer.SelectWithinDistance(nil, office, 100)

		assert.NotNil(t, invitees)
		assert.Empty(t, invitees)
		assert.Equal(t, customer.Stats{}, stats)
	})
}
