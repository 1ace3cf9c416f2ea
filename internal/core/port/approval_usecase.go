package port

import (
	"context"

	"dreamtraffic/internal/core/domain"
)

// ApprovalUseCase guards the approval lifecycle of creatives. Every
// accepted transition is observable as a status change plus exactly one
// audit event.
type ApprovalUseCase interface {
	// GetStatus returns the current status or ErrNotFound.
	GetStatus(ctx context.Context, creativeID int64) (domain.ApprovalStatus, error)
	// GetValidTransitions returns the statuses reachable in one step.
	GetValidTransitions(ctx context.Context, creativeID int64) ([]domain.ApprovalStatus, error)
	// Transition moves the creative to a new status and records the audit
	// event atomically. It fails with an *InvalidTransitionError when the
	// target is not reachable from the current status.
	Transition(ctx context.Context, creativeID int64, to domain.ApprovalStatus, reviewer, notes string) (*TransitionResult, error)

	SubmitForReview(ctx context.Context, creativeID int64, reviewer string) (*TransitionResult, error)
	Approve(ctx context.Context, creativeID int64, reviewer, notes string) (*TransitionResult, error)
	RequestRevision(ctx context.Context, creativeID int64, reviewer, notes string) (*TransitionResult, error)
	MarkTrafficked(ctx context.Context, creativeID int64) (*TransitionResult, error)
	Activate(ctx context.Context, creativeID int64) (*TransitionResult, error)
	Pause(ctx context.Context, creativeID int64, reviewer, notes string) (*TransitionResult, error)
	Archive(ctx context.Context, creativeID int64, reviewer, notes string) (*TransitionResult, error)

	// GetAuditTrail returns every event of the creative in ascending
	// creation order. A creative without events yields an empty slice.
	GetAuditTrail(ctx context.Context, creativeID int64) ([]domain.ApprovalEvent, error)
}

// TransitionResult summarises an accepted transition.
type TransitionResult struct {
	CreativeID int64                 `json:"creative_id"`
	FromStatus domain.ApprovalStatus `json:"from_status"`
	ToStatus   domain.ApprovalStatus `json:"to_status"`
	Reviewer   string                `json:"reviewer"`
	Notes      string                `json:"notes"`
}

// CreativeUseCase exposes campaign and creative records.
type CreativeUseCase interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreateCreative stores a new creative in draft status.
	CreateCreative(ctx context.Context, c *domain.Creative) error
	GetCreative(ctx context.Context, id int64) (*domain.Creative, error)
	ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error)
}
