package port

import (
	"context"

	"dreamtraffic/internal/core/domain"
)

// DSPAdapter is the capability every demand-side platform integration
// offers. Use cases only ever see this interface and never branch on the
// concrete platform.
type DSPAdapter interface {
	// Name returns the DSP key the adapter serves.
	Name() string
	// UploadCreative registers the creative with the DSP.
	UploadCreative(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error)
	// CheckAuditStatus returns the DSP's review status for an uploaded creative.
	CheckAuditStatus(ctx context.Context, dspCreativeID string) (domain.AuditStatus, error)
	// SupportedPlacements lists the placement types the DSP accepts.
	SupportedPlacements() []domain.PlacementType
}
