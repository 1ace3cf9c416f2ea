package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables by caarlos0/env; each nested struct
// is parsed with its envPrefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection pool, migrations and seed.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the VAST tag cache.
	Redis configs.Redis `envPrefix:"REDIS_"`

	Fees   configs.Fees   `envPrefix:"FEES_"`
	Router configs.Router `envPrefix:"ROUTER_"`
	VAST   configs.VAST   `envPrefix:"VAST_"`
}

// Load reads configuration from environment variables into a Config. All
// fields take their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "parse config")
	}
	return cfg, nil
}
