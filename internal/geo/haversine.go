package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

const ddDivisor = math.Pi / 180

// ErrEmptyDegrees is returned when a text coordinate is empty.
var ErrEmptyDegrees = errors.New("empty decimal degrees")

// ToRadians converts decimal degrees to radians.
func ToRadians(decimalDegrees float64) float64 {
	return decimalDegrees * ddDivisor
}

// ParseDegrees converts a text encoded decimal degree value to a number.
// Surrounding whitespace is ignored.
func ParseDegrees(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyDegrees
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse decimal degrees %q: %w", text, err)
	}

	return value, nil
}

// ParseCoordinates builds Coordinates from text encoded latitude and longitude.
func ParseCoordinates(latitude, longitude string) (models.Coordinates, error) {
	lat, err := ParseDegrees(latitude)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid latitude: %w", err)
	}

	lon, err := ParseDegrees(longitude)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("invalid longitude: %w", err)
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// DistanceBetweenTwoLocations computes the great-circle distance in kilometers between
// two points given in decimal degrees. Coordinate ranges are not validated.
func DistanceBetweenTwoLocations(latitude1, longitude1, latitude2, longitude2 float64) float64 {
	lat1 := ToRadians(latitude1)
	lat2 := ToRadians(latitude2)
	dLat := ToRadians(latitude2 - latitude1)
	dLon := ToRadians(longitude2 - longitude1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance is DistanceBetweenTwoLocations for two Coordinates.
func Distance(from, to models.Coordinates) float64 {
	return DistanceBetweenTwoLocations(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}
