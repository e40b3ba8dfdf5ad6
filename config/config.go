package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the base URLs of the five AgendaGol services plus shared
// transport settings. Every value has a default pointing at the local
// docker-compose stack, so the CLI works out of the box in development.
type Config struct {
	Services ServicesConfig
	HTTP     HTTPConfig
}

type ServicesConfig struct {
	AuthURL         string `envconfig:"AGENDAGOL_AUTH_URL" default:"http://localhost:8000"`
	RolesURL        string `envconfig:"AGENDAGOL_ROLES_URL" default:"http://localhost:8001"`
	FieldsURL       string `envconfig:"AGENDAGOL_FIELDS_URL" default:"http://localhost:8002"`
	ReservationsURL string `envconfig:"AGENDAGOL_RESERVATIONS_URL" default:"http://localhost:8003"`
	DashboardURL    string `envconfig:"AGENDAGOL_DASHBOARD_URL" default:"http://localhost:8004"`
}

type HTTPConfig struct {
	Timeout   time.Duration `envconfig:"AGENDAGOL_HTTP_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"AGENDAGOL_USER_AGENT" default:"agendagol-cli"`
}

// Load reads a local .env if present, then resolves configuration from the
// environment. Missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
