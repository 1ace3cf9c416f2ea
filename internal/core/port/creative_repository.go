package port

import (
	"context"

	"dreamtraffic/internal/core/domain"
)

// TransitionCmd describes a status change to be applied atomically. Check is
// invoked with the stored status while the creative is locked; a non-nil
// error aborts the change without side effects.
type TransitionCmd struct {
	CreativeID int64
	To         domain.ApprovalStatus
	Reviewer   string
	Notes      string
	Check      func(from domain.ApprovalStatus) error
}

// CreativeRepository persists campaigns, creatives and their approval
// audit trail. Getters return nil, nil when the entity does not exist.
type CreativeRepository interface {
	// CreateCampaign stores a campaign and fills its ID and CreatedAt.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CreateCreative stores a creative and fills its ID and CreatedAt.
	CreateCreative(ctx context.Context, c *domain.Creative) error
	// GetCreative returns a creative by id.
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	// ListCreatives returns every creative owned by a campaign ordered by id.
	ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error)
	// UpdateTag stores the generated tag URL and vendor selection.
	UpdateTag(ctx context.Context, id int64, vastURL, measurementConfig string) error

	// TransitionStatus locks the creative, runs cmd.Check against the stored
	// status, updates it and appends exactly one approval event, all in one
	// transaction. It returns ErrNotFound when the creative does not exist.
	TransitionStatus(ctx context.Context, cmd TransitionCmd) (*domain.ApprovalEvent, error)
	// ListApprovalEvents returns the audit trail in ascending creation order.
	ListApprovalEvents(ctx context.Context, creativeID int64) ([]domain.ApprovalEvent, error)
}
