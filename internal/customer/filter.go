package customer

import (
	"cmp"
	"slices"

	"github.com/UnknownOlympus/hermes/internal/geo"
	"github.com/UnknownOlympus/hermes/internal/models"
)

// Predicate reports whether a customer matches.
type Predicate func(models.Customer) bool

// IsCustomerWithinDistanceOfLocation binds a reference location and a radius and returns a
// predicate telling whether a customer lives within maxDistanceKm of it. The boundary is
// inclusive. Customers with coordinates that do not parse never match.
func IsCustomerWithinDistanceOfLocation(origin models.Coordinates, maxDistanceKm float64) Predicate {
	return func(c models.Customer) bool {
		coords, err := geo.ParseCoordinates(c.Latitude, c.Longitude)
		if err != nil {
			return false
		}

		return geo.Distance(origin, coords) <= maxDistanceKm
	}
}

// SortByUserID is a three way comparator ordering customers by ascending UserID.
func SortByUserID(a, b models.Customer) int {
	return cmp.Compare(a.UserID, b.UserID)
}

// Stats describes what happened to the records of a single selection.
type Stats struct {
	Read       int // Read is the number of raw records handed to the selection.
	Invalid    int // Invalid records failed validation.
	OutOfRange int // OutOfRange records were valid but too far away.
	Invited    int // Invited records made it into the result.
}

// SelectWithinDistance keeps the valid records within maxDistanceKm of origin and returns
// them sorted by ascending UserID. Ties keep their source order.
func SelectWithinDistance(
	records []models.Record,
	origin models.Coordinates,
	maxDistanceKm float64,
) ([]models.Customer, Stats) {
	stats := Stats{Read: len(records)}
	withinDistance := IsCustomerWithinDistanceOfLocation(origin, maxDistanceKm)
	invitees := make([]models.Customer, 0, len(records))

	for _, rec := range records {
		c, ok := ToCustomer(rec)
		if !ok {
			stats.Invalid++
			continue
		}
		if !withinDistance(c) {
			stats.OutOfRange++
			continue
		}
		invitees = append(invitees, c)
	}

	slices.SortStableFunc(invitees, SortByUserID)
	stats.Invited = len(invitees)

	return invitees, stats
}
