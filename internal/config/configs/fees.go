package configs

// Fees configures the supply-path fee calculator.
type Fees struct {
	// CostPerVideo is the generation cost of one creative, in currency.
	CostPerVideo float64 `env:"COST_PER_VIDEO" envDefault:"0.50"`
	// ImpressionGoal is the number of impressions the cost is amortized over.
	ImpressionGoal int `env:"IMPRESSION_GOAL" envDefault:"100000"`
	// BaseCPM is the media CPM used when formatting a breakdown and no CPM
	// is requested.
	BaseCPM float64 `env:"BASE_CPM" envDefault:"10"`
}
