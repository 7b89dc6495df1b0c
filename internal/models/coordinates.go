package models

// Coordinates represents a geographical point in decimal degrees.
type Coordinates struct {
	Longitude float64 // Longitude of the geographical point.
	Latitude  float64 // Latitude of the geographical point.
}
