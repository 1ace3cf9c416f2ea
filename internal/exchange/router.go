// Package exchange simulates routing a DSP's demand through an intermediary
// exchange to eligible SSPs using T-Group rules and pairing scores.
package exchange

import (
	"math"
	"math/rand"
	"slices"
	"sort"
	"sync"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
)

// Pairing identifies a DSP/SSP combination.
type Pairing struct {
	DSP string
	SSP string
}

// Config holds the routing rules. Use DefaultConfig for the built-in set.
type Config struct {
	TGroups []domain.TGroup
	// Aliases maps a DSP without its own T-Group to the name of a shared one.
	Aliases map[string]string
	// Preferred holds known-good pairing baselines; others score BaseScore.
	Preferred map[Pairing]float64
	BaseScore float64
	// Jitter bounds the uniform perturbation added to every score. Zero
	// makes scores equal to their baselines.
	Jitter float64

	PremiumDSPs      []string
	PremiumFeePct    float64
	ChallengerFeePct float64

	MinLatencyMS int
	MaxLatencyMS int
	MinWinRate   float64
	MaxWinRate   float64
}

// DefaultConfig returns the exchange's built-in routing rules.
func DefaultConfig() Config {
	return Config{
		TGroups: catalog.DefaultTGroups(),
		Aliases: catalog.DefaultTGroupAliases(),
		Preferred: map[Pairing]float64{
			{"amazon", "magnite"}:              0.92,
			{"amazon", "pubmatic"}:             0.88,
			{"amazon", "index_exchange"}:       0.85,
			{"thetradedesk", "pubmatic"}:       0.90,
			{"thetradedesk", "magnite"}:        0.87,
			{"thetradedesk", "index_exchange"}: 0.84,
			{"dv360", "freewheel"}:             0.95,
			{"dv360", "magnite"}:               0.88,
		},
		BaseScore:        0.75,
		Jitter:           0.03,
		PremiumDSPs:      []string{"amazon", "thetradedesk", "dv360"},
		PremiumFeePct:    1.5,
		ChallengerFeePct: 2.5,
		MinLatencyMS:     60,
		MaxLatencyMS:     120,
		MinWinRate:       0.08,
		MaxWinRate:       0.22,
	}
}

// Router ranks SSPs for a DSP. The random source is the only mutable state
// and is guarded so a Router can be shared between goroutines.
type Router struct {
	ssps *catalog.SSPRegistry
	cfg  Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRouter returns a router drawing jitter, latency and win rate from src.
func NewRouter(ssps *catalog.SSPRegistry, cfg Config, src rand.Source) *Router {
	return &Router{ssps: ssps, cfg: cfg, rnd: rand.New(src)}
}

// Route returns the eligible SSPs for req ordered by descending score.
// Equal scores keep candidate order.
func (r *Router) Route(req domain.RouteRequest) []domain.RouteResult {
	group := r.findTGroup(req.DSP)

	var eligible []string
	tgroup, routeType := domain.DefaultTGroup, domain.RouteTypeSmartSwitch
	if group == nil {
		eligible = r.ssps.Keys()
	} else {
		tgroup, routeType = group.Name, domain.RouteTypeTGroup
		if len(group.FormatFilter) > 0 && !slices.Contains(group.FormatFilter, req.Placement) {
			return []domain.RouteResult{}
		}
		if req.BidCPM > 0 && req.BidCPM < group.MinBidFloor {
			return []domain.RouteResult{}
		}
		for _, k := range group.AllowedSSPs {
			if !slices.Contains(group.BlockedSSPs, k) {
				eligible = append(eligible, k)
			}
		}
	}

	fee := r.cfg.ChallengerFeePct
	if slices.Contains(r.cfg.PremiumDSPs, req.DSP) {
		fee = r.cfg.PremiumFeePct
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]domain.RouteResult, 0, len(eligible))
	for _, key := range eligible {
		ssp, err := r.ssps.Get(key)
		if err != nil || !ssp.Supports(req.Placement) {
			continue
		}
		results = append(results, domain.RouteResult{
			DSP:                req.DSP,
			SSP:                key,
			TGroup:             tgroup,
			Score:              round(r.baseline(req.DSP, key)+r.uniform(-r.cfg.Jitter, r.cfg.Jitter), 3),
			EstimatedLatencyMS: r.cfg.MinLatencyMS + r.intn(r.cfg.MaxLatencyMS-r.cfg.MinLatencyMS+1),
			EstimatedWinRate:   round(r.uniform(r.cfg.MinWinRate, r.cfg.MaxWinRate), 3),
			FeePct:             fee,
			RouteType:          routeType,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// SupplyMap returns the allowed SSPs of every T-Group keyed by owning DSP.
func (r *Router) SupplyMap() map[string][]string {
	out := make(map[string][]string, len(r.cfg.TGroups))
	for _, g := range r.cfg.TGroups {
		out[g.DSP] = slices.Clone(g.AllowedSSPs)
	}
	return out
}

func (r *Router) findTGroup(dsp string) *domain.TGroup {
	for i := range r.cfg.TGroups {
		if r.cfg.TGroups[i].DSP == dsp {
			return &r.cfg.TGroups[i]
		}
	}
	if name, ok := r.cfg.Aliases[dsp]; ok {
		for i := range r.cfg.TGroups {
			if r.cfg.TGroups[i].Name == name {
				return &r.cfg.TGroups[i]
			}
		}
	}
	return nil
}

func (r *Router) baseline(dsp, ssp string) float64 {
	if s, ok := r.cfg.Preferred[Pairing{dsp, ssp}]; ok {
		return s
	}
	return r.cfg.BaseScore
}

// uniform and intn must be called with mu held.
func (r *Router) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rnd.Float64()*(hi-lo)
}

func (r *Router) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rnd.Intn(n)
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
