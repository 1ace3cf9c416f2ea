package configs

// Router configures the exchange router scoring.
type Router struct {
	// Jitter is the half-width of the random perturbation added to each
	// score. Zero makes routing deterministic.
	Jitter float64 `env:"JITTER" envDefault:"0.03"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
}
