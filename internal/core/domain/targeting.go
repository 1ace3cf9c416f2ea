package domain

// TGroup is an explicit DSP-to-SSP routing rule set on the exchange.
type TGroup struct {
	Name         string   `json:"name"`
	DSP          string   `json:"dsp"`
	AllowedSSPs  []string `json:"allowed_ssps"`
	BlockedSSPs  []string `json:"blocked_ssps"`
	GeoTargets   []string `json:"geo_targets"`
	FormatFilter []string `json:"format_filter"`
	MinBidFloor  float64  `json:"min_bid_floor"`
}

// Route types reported on a RouteResult.
const (
	RouteTypeTGroup      = "t_group"
	RouteTypeSmartSwitch = "smartswitch"
)

// DefaultTGroup is the T-Group name reported when a DSP has no rule set.
const DefaultTGroup = "default"

// RouteResult is one scored routing candidate. It is regenerated on every
// routing request.
type RouteResult struct {
	DSP                string  `json:"dsp"`
	SSP                string  `json:"ssp"`
	TGroup             string  `json:"t_group"`
	Score              float64 `json:"smartswitch_score"`
	EstimatedLatencyMS int     `json:"estimated_latency_ms"`
	EstimatedWinRate   float64 `json:"estimated_win_rate"`
	FeePct             float64 `json:"fee_pct"`
	RouteType          string  `json:"route_type"`
}

// RouteRequest asks the exchange for eligible SSPs for a DSP's demand.
// BidCPM is optional; when positive it is checked against the T-Group floor.
type RouteRequest struct {
	DSP       string
	Placement string
	BidCPM    float64
}
