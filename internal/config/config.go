package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-campaigns/internal/config/configs"
)

// Config aggregates all configuration sections. Nested structs are parsed
// with their envPrefix; see the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP is populated from HTTP_* variables.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log is populated from LOG_* variables.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the event journal from PSQL_* variables.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Bus is populated from BUS_* variables.
	Bus configs.Bus `envPrefix:"BUS_"`

	// Redis configures the live counters from REDIS_* variables.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Kafka configures the event relay from KAFKA_* variables.
	Kafka configs.Kafka `envPrefix:"KAFKA_"`
}

// Load reads configuration from environment variables into a Config.
// Fields without a variable take their declared default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
