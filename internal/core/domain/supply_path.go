package domain

// SupplyPath describes one DSP -> exchange -> SSP route and its fee stack.
// Exchange is empty for direct paths. Fee percentages are additive and
// expressed on the same net-spend basis.
type SupplyPath struct {
	ID               int64   `json:"id"`
	DSP              string  `json:"dsp"`
	Exchange         string  `json:"exchange"`
	SSP              string  `json:"ssp"`
	DSPFeePct        float64 `json:"dsp_fee_pct"`
	ExchangeFeePct   float64 `json:"exchange_fee_pct"`
	SSPFeePct        float64 `json:"ssp_fee_pct"`
	MeasurementCPM   float64 `json:"measurement_cpm"`
	EstimatedWinRate float64 `json:"estimated_win_rate"`
	AvgLatencyMS     int     `json:"avg_latency_ms"`
	Notes            string  `json:"notes"`
}

// FeeBreakdown is the derived economics of a single supply path. It is
// never persisted.
type FeeBreakdown struct {
	DSP            string  `json:"dsp"`
	Exchange       string  `json:"exchange"`
	SSP            string  `json:"ssp"`
	DSPFeePct      float64 `json:"dsp_fee_pct"`
	ExchangeFeePct float64 `json:"exchange_fee_pct"`
	SSPFeePct      float64 `json:"ssp_fee_pct"`
	MeasurementCPM float64 `json:"measurement_cpm"`
	// CreativeCPM is the amortized creative generation cost per thousand
	// impressions, in currency. It is not part of TotalSupplyCostPct.
	CreativeCPM        float64 `json:"creative_cpm"`
	TotalSupplyCostPct float64 `json:"total_supply_cost_pct"`
	PublisherNetPct    float64 `json:"publisher_net_pct"`
	Notes              string  `json:"notes"`
}

// PathSummary is the per-path tuple listed inside a DSPComparison.
type PathSummary struct {
	Exchange        string  `json:"exchange"`
	SSP             string  `json:"ssp"`
	TotalCostPct    float64 `json:"total_cost_pct"`
	PublisherNetPct float64 `json:"publisher_net_pct"`
}

// DSPComparison aggregates the breakdowns of every path owned by one DSP.
type DSPComparison struct {
	DSP                string        `json:"dsp"`
	PathCount          int           `json:"path_count"`
	AvgDSPFee          float64       `json:"avg_dsp_fee"`
	AvgTotalSupplyCost float64       `json:"avg_total_supply_cost"`
	AvgPublisherNet    float64       `json:"avg_publisher_net"`
	AvgMeasurementCPM  float64       `json:"avg_measurement_cpm"`
	CreativeCPM        float64       `json:"creative_cpm"`
	Paths              []PathSummary `json:"paths"`
}
