// Package fees computes supply-path fee stacks and DSP level comparisons.
package fees

import (
	"cmp"
	"math"
	"slices"

	"dreamtraffic/internal/core/domain"
)

const (
	// DefaultCostPerVideo is the assumed generation cost of one creative.
	DefaultCostPerVideo = 0.50
	// DefaultImpressionGoal is the impression count the cost is amortized over.
	DefaultImpressionGoal = 100_000
)

// Calculator derives fee breakdowns from supply paths. It is immutable and
// safe for concurrent use.
type Calculator struct {
	costPerVideo   float64
	impressionGoal int
}

// NewCalculator returns a calculator. Non-positive inputs take the defaults.
func NewCalculator(costPerVideo float64, impressionGoal int) *Calculator {
	if costPerVideo <= 0 {
		costPerVideo = DefaultCostPerVideo
	}
	if impressionGoal <= 0 {
		impressionGoal = DefaultImpressionGoal
	}
	return &Calculator{costPerVideo: costPerVideo, impressionGoal: impressionGoal}
}

// CreativeCPM is the creative generation cost amortized per thousand
// impressions.
func (c *Calculator) CreativeCPM() float64 {
	return c.costPerVideo / float64(c.impressionGoal) * 1000
}

// CalculatePath computes the breakdown of one path. Fees summing above 100
// yield a negative publisher net; no clamping is applied.
func (c *Calculator) CalculatePath(p domain.SupplyPath) domain.FeeBreakdown {
	total := p.DSPFeePct + p.ExchangeFeePct + p.SSPFeePct
	return domain.FeeBreakdown{
		DSP:                p.DSP,
		Exchange:           p.Exchange,
		SSP:                p.SSP,
		DSPFeePct:          p.DSPFeePct,
		ExchangeFeePct:     p.ExchangeFeePct,
		SSPFeePct:          p.SSPFeePct,
		MeasurementCPM:     p.MeasurementCPM,
		CreativeCPM:        round(c.CreativeCPM(), 4),
		TotalSupplyCostPct: total,
		PublisherNetPct:    100 - total,
		Notes:              p.Notes,
	}
}

// CalculateAll returns one breakdown per path ordered by DSP then SSP key.
// Paths sharing both keys keep their input order.
func (c *Calculator) CalculateAll(paths []domain.SupplyPath) []domain.FeeBreakdown {
	sorted := slices.Clone(paths)
	slices.SortStableFunc(sorted, func(a, b domain.SupplyPath) int {
		return cmp.Or(cmp.Compare(a.DSP, b.DSP), cmp.Compare(a.SSP, b.SSP))
	})
	out := make([]domain.FeeBreakdown, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, c.CalculatePath(p))
	}
	return out
}

// CompareDSPs groups the paths by DSP key and averages each group.
// Percentages are rounded to two decimals and CPM figures to four. Groups
// are ordered by DSP key.
func (c *Calculator) CompareDSPs(paths []domain.SupplyPath) []domain.DSPComparison {
	breakdowns := c.CalculateAll(paths)
	creativeCPM := round(c.CreativeCPM(), 4)

	var out []domain.DSPComparison
	for start := 0; start < len(breakdowns); {
		end := start
		for end < len(breakdowns) && breakdowns[end].DSP == breakdowns[start].DSP {
			end++
		}
		group := breakdowns[start:end]
		n := float64(len(group))

		var dspFee, total, net, measurement float64
		summaries := make([]domain.PathSummary, 0, len(group))
		for _, b := range group {
			dspFee += b.DSPFeePct
			total += b.TotalSupplyCostPct
			net += b.PublisherNetPct
			measurement += b.MeasurementCPM
			summaries = append(summaries, domain.PathSummary{
				Exchange:        b.Exchange,
				SSP:             b.SSP,
				TotalCostPct:    b.TotalSupplyCostPct,
				PublisherNetPct: b.PublisherNetPct,
			})
		}
		out = append(out, domain.DSPComparison{
			DSP:                group[0].DSP,
			PathCount:          len(group),
			AvgDSPFee:          round(dspFee/n, 2),
			AvgTotalSupplyCost: round(total/n, 2),
			AvgPublisherNet:    round(net/n, 2),
			AvgMeasurementCPM:  round(measurement/n, 4),
			CreativeCPM:        creativeCPM,
			Paths:              summaries,
		})
		start = end
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
