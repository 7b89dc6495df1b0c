package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hermes/internal/customer"
	"github.com/UnknownOlympus/hermes/internal/geo"
	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/models"
)

// ErrNoGeocoder is returned when an origin address is configured without a geocoding provider.
var ErrNoGeocoder = errors.New("origin address configured but no geocoding provider available")

// CustomerReader loads raw customer records. Implementations never fail: an
// unreadable source yields an empty slice.
type CustomerReader interface {
	ReadCustomerFile(ctx context.Context, locator string) []models.Record
}

// OriginConfig describes the reference location of a run. Address, when set, wins over
// the text coordinates.
type OriginConfig struct {
	Latitude  string
	Longitude string
	Address   string
}

// InviteService selects the customers to invite around a reference location.
type InviteService struct {
	log          *slog.Logger       // Logger for logging service activities
	reader       CustomerReader     // Source of raw customer records
	provider     geocoding.Provider // Optional geocoder for address origins
	providerName string             // Name of the provider for metrics labeling
	metrics      *metrics.Metrics   // Metrics for tracking runs
}

// NewInviteService creates a new instance of InviteService. provider may be nil when
// origins are always given as coordinates, metrics may be nil to skip recording.
func NewInviteService(
	log *slog.Logger,
	reader CustomerReader,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
) *InviteService {
	return &InviteService{
		log:          log,
		reader:       reader,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
	}
}

// ResolveOrigin turns the configured origin into coordinates, geocoding the address
// when one is set.
func (s *InviteService) ResolveOrigin(ctx context.Context, origin OriginConfig) (models.Coordinates, error) {
	if origin.Address == "" {
		coords, err := geo.ParseCoordinates(origin.Latitude, origin.Longitude)
		if err != nil {
			return models.Coordinates{}, fmt.Errorf("failed to parse origin: %w", err)
		}
		return coords, nil
	}

	if s.provider == nil {
		return models.Coordinates{}, ErrNoGeocoder
	}

	startTime := time.Now()
	coords, err := s.provider.Geocode(ctx, origin.Address)
	if s.metrics != nil {
		s.metrics.GeocodeSeconds.WithLabelValues(s.providerName).Observe(time.Since(startTime).Seconds())
	}
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("failed to geocode origin address: %w", err)
	}

	s.log.InfoContext(ctx, "Origin resolved from address",
		"address", origin.Address, "lat", coords.Latitude, "lon", coords.Longitude)

	return *coords, nil
}

// CalculateCustomersWithinDistance reads the customers behind locator and returns the
// valid ones within maxDistanceKm of origin, sorted by ascending user id. It never fails;
// a broken source yields no customers.
func (s *InviteService) CalculateCustomersWithinDistance(
	ctx context.Context,
	locator string,
	origin models.Coordinates,
	maxDistanceKm float64,
) []models.Customer {
	startTime := time.Now()

	records := s.reader.ReadCustomerFile(ctx, locator)
	invitees, stats := customer.SelectWithinDistance(records, origin, maxDistanceKm)

	s.recordRun(time.Since(startTime), stats)

	s.log.InfoContext(ctx, "Customer selection finished",
		"read", stats.Read,
		"invalid", stats.Invalid,
		"out_of_range", stats.OutOfRange,
		"invited", stats.Invited,
		"max_distance_km", maxDistanceKm,
	)

	return invitees
}

func (s *InviteService) recordRun(elapsed time.Duration, stats customer.Stats) {
	if s.metrics == nil {
		return
	}

	s.metrics.PipelineSeconds.Observe(elapsed.Seconds())
	s.metrics.RecordsRead.Add(float64(stats.Read))
	s.metrics.RecordsRejected.WithLabelValues(metrics.ReasonInvalid).Add(float64(stats.Invalid))
	s.metrics.RecordsRejected.WithLabelValues(metrics.ReasonOutOfRange).Add(float64(stats.OutOfRange))
	s.metrics.Invitees.Set(float64(stats.Invited))
}
