package geocoding

import (
	"context"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Provider resolves a postal address to coordinates. hermes uses it to turn the
// configured office address into the reference location of a run.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
