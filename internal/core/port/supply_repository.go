package port

import (
	"context"

	"dreamtraffic/internal/core/domain"
)

// SupplyPathRepository stores the supply-path fee catalog.
type SupplyPathRepository interface {
	// ListSupplyPaths returns every path ordered by DSP then SSP key.
	ListSupplyPaths(ctx context.Context) ([]domain.SupplyPath, error)
	// GetSupplyPath returns a path by id, or nil, nil when missing.
	GetSupplyPath(ctx context.Context, id int64) (*domain.SupplyPath, error)
	// CreateSupplyPath stores an administrator-entered path and fills its ID.
	CreateSupplyPath(ctx context.Context, p *domain.SupplyPath) error
}

// TraffickingRepository stores DSP upload outcomes.
type TraffickingRepository interface {
	// CreateTraffickingRecord stores a record and fills its ID and timestamps.
	CreateTraffickingRecord(ctx context.Context, r *domain.TraffickingRecord) error
	// ListTraffickingRecords returns every record of a creative ordered by id.
	ListTraffickingRecords(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error)
	// UpdateAuditStatus stores the latest audit status of a record.
	UpdateAuditStatus(ctx context.Context, id int64, status domain.AuditStatus) error
}

// TagCache keeps rendered VAST documents so they can be served by tag URL.
type TagCache interface {
	// PutInline stores the InLine document of a creative.
	PutInline(ctx context.Context, creativeID int64, xml string) error
	// GetInline returns the cached document, or ErrNotFound.
	GetInline(ctx context.Context, creativeID int64) (string, error)
}
