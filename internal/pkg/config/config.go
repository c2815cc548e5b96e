package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream endpoint)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Booking  BookingConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at the dormitory GraphQL API that owns all
// reservation state.
type UpstreamConfig struct {
	Endpoint       string        `envconfig:"UPSTREAM_GRAPHQL_ENDPOINT" required:"true"`
	RequestTimeout time.Duration `envconfig:"UPSTREAM_REQUEST_TIMEOUT" default:"10s"`
	BuildingsTTL   time.Duration `envconfig:"UPSTREAM_BUILDINGS_TTL" default:"1h"`
	ResourcesTTL   time.Duration `envconfig:"UPSTREAM_RESOURCES_TTL" default:"5m"`
}

type BookingConfig struct {
	// Timezone of the dormitory; standard-resource start/end hours are
	// interpreted in this zone when normalized at submission.
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"Europe/Warsaw"`
	// Abandoned booking sessions older than SessionMaxAge are swept.
	SessionMaxAge time.Duration `envconfig:"BOOKING_SESSION_MAX_AGE" default:"2h"`
	SweepInterval time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:4200"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID,X-User-Role,X-User-Building-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Warsaw"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			Endpoint:       "http://localhost:18080/graphql",
			RequestTimeout: 2 * time.Second,
			BuildingsTTL:   time.Minute,
			ResourcesTTL:   time.Minute,
		},
		Booking: BookingConfig{
			TimeZone:      "Europe/Warsaw",
			SessionMaxAge: time.Hour,
			SweepInterval: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Warsaw",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
	}
}
