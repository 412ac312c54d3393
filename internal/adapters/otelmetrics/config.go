package otelmetrics

import (
	"os"
	"strconv"
)

// Config holds OTLP exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// LoadConfig loads exporter configuration from environment variables.
// Metrics are disabled unless SHELTERBOARD_OTEL_ENABLED is set.
func LoadConfig() Config {
	enabled, _ := strconv.ParseBool(os.Getenv("SHELTERBOARD_OTEL_ENABLED"))
	insecure, _ := strconv.ParseBool(os.Getenv("SHELTERBOARD_OTEL_INSECURE"))

	return Config{
		Endpoint: os.Getenv("SHELTERBOARD_OTEL_ENDPOINT"),
		Enabled:  enabled,
		Insecure: insecure,
	}
}
