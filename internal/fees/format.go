package fees

import (
	"fmt"
	"strings"

	"dreamtraffic/internal/core/domain"
)

// DefaultBaseCPM is the media CPM used when rendering breakdowns.
const DefaultBaseCPM = 10.0

// FormatBreakdown renders b as text, translating each percentage into a
// currency amount at baseCPM.
func FormatBreakdown(b domain.FeeBreakdown, baseCPM float64) string {
	exchange := b.Exchange
	if exchange == "" {
		exchange = "direct"
	}
	amount := func(pct float64) float64 { return baseCPM * pct / 100 }
	rule := strings.Repeat("─", 50)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Supply Path: %s → %s → %s\n", b.DSP, exchange, b.SSP)
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "  Creative Gen         $%.4f/CPM (amortized)\n", b.CreativeCPM)
	fmt.Fprintf(&sb, "  DSP Fee              %.1f%%  ($%.2f)\n", b.DSPFeePct, amount(b.DSPFeePct))
	fmt.Fprintf(&sb, "  Exchange Fee         %.1f%%  ($%.2f)\n", b.ExchangeFeePct, amount(b.ExchangeFeePct))
	fmt.Fprintf(&sb, "  SSP Fee              %.1f%%  ($%.2f)\n", b.SSPFeePct, amount(b.SSPFeePct))
	fmt.Fprintf(&sb, "  Measurement          $%.3f/CPM\n", b.MeasurementCPM)
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "  Total Supply Cost    %.1f%% + measurement\n", b.TotalSupplyCostPct)
	fmt.Fprintf(&sb, "  Publisher Net        %.1f%%  ($%.2f)", b.PublisherNetPct, amount(b.PublisherNetPct))
	if b.Notes != "" {
		fmt.Fprintf(&sb, "\n  Note: %s", b.Notes)
	}
	return sb.String()
}
