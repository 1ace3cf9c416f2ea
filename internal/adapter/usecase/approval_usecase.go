package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// Default reviewers and notes used by the convenience transitions.
const (
	ReviewerSystem      = "system"
	ReviewerCompliance  = "compliance_reviewer"
	ReviewerTrafficking = "trafficking_manager"
)

// ApprovalUseCase implements port.ApprovalUseCase on top of a creative
// repository. Atomicity of the status update and the audit append is
// delegated to CreativeRepository.TransitionStatus, which evaluates the
// transition table while the creative is locked.
type ApprovalUseCase struct {
	repo   port.CreativeRepository
	logger *slog.Logger
}

// NewApprovalUseCase creates a new workflow over repo.
func NewApprovalUseCase(repo port.CreativeRepository, logger *slog.Logger) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, logger: logger}
}

// GetStatus returns the stored status of a creative.
func (u *ApprovalUseCase) GetStatus(ctx context.Context, creativeID int64) (domain.ApprovalStatus, error) {
	cr, err := u.repo.GetCreative(ctx, creativeID)
	if err != nil {
		return "", eris.Wrapf(err, "get creative %d", creativeID)
	}
	if cr == nil {
		return "", eris.Wrapf(port.ErrNotFound, "creative %d", creativeID)
	}
	return cr.ApprovalStatus, nil
}

// GetValidTransitions returns the statuses reachable from the current one.
func (u *ApprovalUseCase) GetValidTransitions(ctx context.Context, creativeID int64) ([]domain.ApprovalStatus, error) {
	status, err := u.GetStatus(ctx, creativeID)
	if err != nil {
		return nil, err
	}
	return status.NextStatuses(), nil
}

// Transition applies a status change. A rejected change is returned as
// *port.InvalidTransitionError and leaves the creative untouched.
func (u *ApprovalUseCase) Transition(ctx context.Context, creativeID int64, to domain.ApprovalStatus, reviewer, notes string) (*port.TransitionResult, error) {
	if reviewer == "" {
		reviewer = ReviewerSystem
	}
	ev, err := u.repo.TransitionStatus(ctx, port.TransitionCmd{
		CreativeID: creativeID,
		To:         to,
		Reviewer:   reviewer,
		Notes:      notes,
		Check: func(from domain.ApprovalStatus) error {
			if !from.CanTransition(to) {
				return &port.InvalidTransitionError{From: from, To: to, Valid: from.NextStatuses()}
			}
			return nil
		},
	})
	if err != nil {
		var invalid *port.InvalidTransitionError
		if errors.As(err, &invalid) {
			u.logger.Warn("transition rejected",
				slog.Int64("creative_id", creativeID),
				slog.String("from", string(invalid.From)),
				slog.String("to", string(to)))
			return nil, err
		}
		return nil, eris.Wrapf(err, "transition creative %d to %s", creativeID, to)
	}
	u.logger.Info("creative transitioned",
		slog.Int64("creative_id", creativeID),
		slog.String("from", string(ev.FromStatus)),
		slog.String("to", string(ev.ToStatus)),
		slog.String("reviewer", ev.Reviewer))
	return &port.TransitionResult{
		CreativeID: creativeID,
		FromStatus: ev.FromStatus,
		ToStatus:   ev.ToStatus,
		Reviewer:   ev.Reviewer,
		Notes:      ev.Notes,
	}, nil
}

// SubmitForReview moves a draft or revised creative to pending_review.
func (u *ApprovalUseCase) SubmitForReview(ctx context.Context, creativeID int64, reviewer string) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusPendingReview, reviewer, "Submitted for compliance review")
}

func (u *ApprovalUseCase) Approve(ctx context.Context, creativeID int64, reviewer, notes string) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusApproved, or(reviewer, ReviewerCompliance),
		or(notes, "Creative approved, meets all DSP specifications"))
}

func (u *ApprovalUseCase) RequestRevision(ctx context.Context, creativeID int64, reviewer, notes string) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusRevisionRequested, or(reviewer, ReviewerCompliance), or(notes, "Revision needed"))
}

func (u *ApprovalUseCase) MarkTrafficked(ctx context.Context, creativeID int64) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusTrafficked, ReviewerTrafficking, "Creative uploaded to all target DSPs")
}

func (u *ApprovalUseCase) Activate(ctx context.Context, creativeID int64) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusActive, ReviewerSystem, "DSP audits passed, creative now serving")
}

func (u *ApprovalUseCase) Pause(ctx context.Context, creativeID int64, reviewer, notes string) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusPaused, reviewer, or(notes, "Delivery paused"))
}

func (u *ApprovalUseCase) Archive(ctx context.Context, creativeID int64, reviewer, notes string) (*port.TransitionResult, error) {
	return u.Transition(ctx, creativeID, domain.StatusArchived, reviewer, or(notes, "Creative archived"))
}

// GetAuditTrail returns the creative's approval events oldest first.
func (u *ApprovalUseCase) GetAuditTrail(ctx context.Context, creativeID int64) ([]domain.ApprovalEvent, error) {
	if _, err := u.GetStatus(ctx, creativeID); err != nil {
		return nil, err
	}
	events, err := u.repo.ListApprovalEvents(ctx, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "list approval events of creative %d", creativeID)
	}
	if events == nil {
		events = []domain.ApprovalEvent{}
	}
	return events, nil
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
