package configs

import "time"

// Redis configures the VAST tag cache.
type Redis struct {
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`
	// TagTTL is how long a rendered tag stays servable. Zero keeps it
	// until overwritten.
	TagTTL time.Duration `env:"TAG_TTL" envDefault:"0s"`
}
