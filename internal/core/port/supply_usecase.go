package port

import (
	"context"

	"dreamtraffic/internal/core/domain"
)

// SupplyChainUseCase exposes fee-stack analysis and exchange routing.
type SupplyChainUseCase interface {
	// CalculateAllPaths returns one breakdown per stored supply path,
	// ordered by DSP then SSP key.
	CalculateAllPaths(ctx context.Context) ([]domain.FeeBreakdown, error)
	// CompareDSPs groups the breakdowns by DSP, ordered by DSP key.
	CompareDSPs(ctx context.Context) ([]domain.DSPComparison, error)
	// FormatPath renders a stored path in currency terms at baseCPM.
	FormatPath(ctx context.Context, pathID int64, baseCPM float64) (string, error)
	// CreateSupplyPath validates and stores an administrator-entered path.
	CreateSupplyPath(ctx context.Context, p *domain.SupplyPath) error

	// Route returns ranked routing candidates for a DSP.
	Route(ctx context.Context, req domain.RouteRequest) ([]domain.RouteResult, error)
	// SupplyMap returns DSP -> allowed SSP keys for every T-Group.
	SupplyMap(ctx context.Context) map[string][]string
	// ListSSPs returns the SSP catalog.
	ListSSPs(ctx context.Context) []domain.SSPConfig
}

// TagUseCase renders and serves VAST tags for creatives.
type TagUseCase interface {
	// GenerateCreativeTag renders an InLine tag for a stored creative,
	// records the tag URL and vendor selection on it and caches the XML.
	GenerateCreativeTag(ctx context.Context, creativeID int64, vendorKeys []string) (*TagResult, error)
	// GetCreativeTag returns the cached InLine document of a creative.
	GetCreativeTag(ctx context.Context, creativeID int64) (string, error)
	// GenerateWrapper renders a Wrapper tag forwarding to uri.
	GenerateWrapper(ctx context.Context, uri string, vendorKeys []string) (string, error)
	// ListVendors returns the measurement vendor catalog.
	ListVendors(ctx context.Context) []domain.VendorConfig
}

// TagResult is returned after a creative's tag has been generated.
type TagResult struct {
	CreativeID int64    `json:"creative_id"`
	VastURL    string   `json:"vast_url"`
	Vendors    []string `json:"vendors"`
	XML        string   `json:"xml"`
}

// TraffickingUseCase delivers approved creatives to DSPs.
type TraffickingUseCase interface {
	// TrafficCreative uploads an approved creative to each DSP, stores one
	// record per upload and marks the creative trafficked.
	TrafficCreative(ctx context.Context, creativeID int64, dsps []string) ([]domain.TraffickingRecord, error)
	// RefreshAuditStatus polls each DSP for the creative's audit status.
	RefreshAuditStatus(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error)
	// ListRecords returns the stored records of a creative ordered by id.
	ListRecords(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error)
}
