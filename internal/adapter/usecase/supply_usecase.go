package usecase

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
	"dreamtraffic/internal/exchange"
	"dreamtraffic/internal/fees"
)

// SupplyChainUseCase combines the fee calculator and the exchange router.
type SupplyChainUseCase struct {
	repo    port.SupplyPathRepository
	calc    *fees.Calculator
	baseCPM float64
	router  *exchange.Router
	ssps    *catalog.SSPRegistry
	logger  *slog.Logger
}

// NewSupplyChainUseCase creates the use case. baseCPM is the media CPM used
// by FormatPath when the caller passes none; non-positive values fall back
// to fees.DefaultBaseCPM.
func NewSupplyChainUseCase(repo port.SupplyPathRepository, calc *fees.Calculator, baseCPM float64, router *exchange.Router, ssps *catalog.SSPRegistry, logger *slog.Logger) *SupplyChainUseCase {
	if baseCPM <= 0 {
		baseCPM = fees.DefaultBaseCPM
	}
	return &SupplyChainUseCase{repo: repo, calc: calc, baseCPM: baseCPM, router: router, ssps: ssps, logger: logger}
}

func (u *SupplyChainUseCase) paths(ctx context.Context) ([]domain.SupplyPath, error) {
	paths, err := u.repo.ListSupplyPaths(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "list supply paths")
	}
	return paths, nil
}

func (u *SupplyChainUseCase) CalculateAllPaths(ctx context.Context) ([]domain.FeeBreakdown, error) {
	paths, err := u.paths(ctx)
	if err != nil {
		return nil, err
	}
	return u.calc.CalculateAll(paths), nil
}

func (u *SupplyChainUseCase) CompareDSPs(ctx context.Context) ([]domain.DSPComparison, error) {
	paths, err := u.paths(ctx)
	if err != nil {
		return nil, err
	}
	out := u.calc.CompareDSPs(paths)
	if out == nil {
		out = []domain.DSPComparison{}
	}
	return out, nil
}

// FormatPath renders one stored path. A non-positive baseCPM uses the
// configured default.
func (u *SupplyChainUseCase) FormatPath(ctx context.Context, pathID int64, baseCPM float64) (string, error) {
	p, err := u.repo.GetSupplyPath(ctx, pathID)
	if err != nil {
		return "", eris.Wrapf(err, "get supply path %d", pathID)
	}
	if p == nil {
		return "", eris.Wrapf(port.ErrNotFound, "supply path %d", pathID)
	}
	if baseCPM <= 0 {
		baseCPM = u.baseCPM
	}
	return fees.FormatBreakdown(u.calc.CalculatePath(*p), baseCPM), nil
}

// CreateSupplyPath stores an administrator-entered path. Negative values
// are rejected; fee stacks above 100% are accepted and logged because they
// indicate a data-quality problem rather than an invalid record.
func (u *SupplyChainUseCase) CreateSupplyPath(ctx context.Context, p *domain.SupplyPath) error {
	if p.DSP == "" || p.SSP == "" {
		return eris.Wrap(port.ErrInvalidArgument, "dsp and ssp are required")
	}
	if p.DSPFeePct < 0 || p.ExchangeFeePct < 0 || p.SSPFeePct < 0 || p.MeasurementCPM < 0 {
		return eris.Wrap(port.ErrInvalidArgument, "fees must be non-negative")
	}
	if p.EstimatedWinRate < 0 || p.EstimatedWinRate > 1 || p.AvgLatencyMS < 0 {
		return eris.Wrap(port.ErrInvalidArgument, "win rate must be within [0,1] and latency non-negative")
	}
	if total := p.DSPFeePct + p.ExchangeFeePct + p.SSPFeePct; total > 100 {
		u.logger.Warn("supply path fees exceed 100%",
			slog.String("dsp", p.DSP),
			slog.String("ssp", p.SSP),
			slog.Float64("total_pct", total))
	}
	if err := u.repo.CreateSupplyPath(ctx, p); err != nil {
		return eris.Wrap(err, "create supply path")
	}
	return nil
}

// Route ranks SSPs for the DSP. An empty placement routes olv demand.
func (u *SupplyChainUseCase) Route(_ context.Context, req domain.RouteRequest) ([]domain.RouteResult, error) {
	if req.DSP == "" {
		return nil, eris.Wrap(port.ErrInvalidArgument, "dsp is required")
	}
	if req.Placement == "" {
		req.Placement = string(domain.PlacementOLV)
	}
	results := u.router.Route(req)
	u.logger.Debug("exchange routed",
		slog.String("dsp", req.DSP),
		slog.String("placement", req.Placement),
		slog.Int("candidates", len(results)))
	return results, nil
}

func (u *SupplyChainUseCase) SupplyMap(_ context.Context) map[string][]string {
	return u.router.SupplyMap()
}

func (u *SupplyChainUseCase) ListSSPs(_ context.Context) []domain.SSPConfig {
	return u.ssps.List()
}
