package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces every environment variable read by hermes.
const envPrefix = "HERMES"

// Config holds the configuration settings of a hermes run.
type Config struct {
	Env            string         // Env is the current environment: local, development, production.
	Source         SourceConfig   // Source describes where the customer records live.
	Origin         OriginConfig   // Origin is the reference location of the invitation radius.
	MaxDistanceKm  float64        // MaxDistanceKm is the invitation radius, boundary inclusive.
	Geocoder       GeocoderConfig // Geocoder resolves address origins.
	XLSXOutput     string         // XLSXOutput is an optional path for an Excel copy of the list.
	PushgatewayURL string         // PushgatewayURL optionally receives the run metrics.
}

// SourceConfig describes the customer record source.
type SourceConfig struct {
	Locator string        // Locator is a file path, http(s) URL or postgres DSN.
	Table   string        // Table holds the customers for postgres locators.
	Timeout time.Duration // Timeout bounds network backed reads.
}

// OriginConfig is the reference location of the invitation radius.
type OriginConfig struct {
	Latitude  string // Latitude in decimal degrees, kept as text.
	Longitude string // Longitude in decimal degrees, kept as text.
	Address   string // Address, when set, is geocoded and wins over the coordinates.
}

// GeocoderConfig selects the geocoding provider.
type GeocoderConfig struct {
	Provider  string // Provider is google or nominatim.
	APIKey    string // APIKey is required by Google.
	RateLimit int    // RateLimit in requests per second.
}

// MustLoad reads the configuration from the environment (and an optional .env file)
// and panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("customers_source", "customers.json")
	v.SetDefault("customers_table", "customers")
	v.SetDefault("source_timeout", "10s")
	v.SetDefault("origin_latitude", "53.3381985")
	v.SetDefault("origin_longitude", "-6.2592576")
	v.SetDefault("origin_address", "")
	v.SetDefault("max_distance_km", "100")
	v.SetDefault("geocoder_provider", "nominatim")
	v.SetDefault("geocoder_api_key", "")
	v.SetDefault("geocoder_rate_limit", "1")
	v.SetDefault("xlsx_output", "")
	v.SetDefault("pushgateway_url", "")

	maxDistance, err := strconv.ParseFloat(v.GetString("max_distance_km"), 64)
	if err != nil || maxDistance < 0 {
		panic("failed to parse max distance from configuration")
	}

	timeout, err := time.ParseDuration(v.GetString("source_timeout"))
	if err != nil {
		panic("failed to parse source timeout from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("geocoder_rate_limit"))
	if err != nil {
		panic("failed to parse geocoder rate limit from configuration, must be an integer")
	}

	return &Config{
		Env: v.GetString("env"),
		Source: SourceConfig{
			Locator: v.GetString("customers_source"),
			Table:   v.GetString("customers_table"),
			Timeout: timeout,
		},
		Origin: OriginConfig{
			Latitude:  v.GetString("origin_latitude"),
			Longitude: v.GetString("origin_longitude"),
			Address:   v.GetString("origin_address"),
		},
		MaxDistanceKm: maxDistance,
		Geocoder: GeocoderConfig{
			Provider:  v.GetString("geocoder_provider"),
			APIKey:    v.GetString("geocoder_api_key"),
			RateLimit: rateLimit,
		},
		XLSXOutput:     v.GetString("xlsx_output"),
		PushgatewayURL: v.GetString("pushgateway_url"),
	}
}
