package domain

import (
	"slices"
	"time"
)

// ApprovalStatus is the lifecycle state of a creative.
type ApprovalStatus string

const (
	StatusDraft             ApprovalStatus = "draft"
	StatusPendingReview     ApprovalStatus = "pending_review"
	StatusRevisionRequested ApprovalStatus = "revision_requested"
	StatusApproved          ApprovalStatus = "approved"
	StatusTrafficked        ApprovalStatus = "trafficked"
	StatusActive            ApprovalStatus = "active"
	StatusPaused            ApprovalStatus = "paused"
	StatusArchived          ApprovalStatus = "archived"
)

// transitions maps every status to the statuses reachable in one step.
// Archived is terminal.
var transitions = map[ApprovalStatus][]ApprovalStatus{
	StatusDraft:             {StatusPendingReview},
	StatusPendingReview:     {StatusApproved, StatusRevisionRequested},
	StatusRevisionRequested: {StatusPendingReview},
	StatusApproved:          {StatusTrafficked},
	StatusTrafficked:        {StatusActive, StatusPaused},
	StatusActive:            {StatusPaused, StatusArchived},
	StatusPaused:            {StatusActive, StatusArchived},
	StatusArchived:          {},
}

// Valid reports whether s is one of the enumerated statuses.
func (s ApprovalStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// NextStatuses returns a copy of the statuses reachable from s. Unknown
// statuses have no successors.
func (s ApprovalStatus) NextStatuses() []ApprovalStatus {
	return slices.Clone(transitions[s])
}

// CanTransition reports whether moving from s to to is legal.
func (s ApprovalStatus) CanTransition(to ApprovalStatus) bool {
	return slices.Contains(transitions[s], to)
}

// ApprovalEvent is an immutable audit record of one accepted transition.
type ApprovalEvent struct {
	ID         int64          `json:"id"`
	CreativeID int64          `json:"creative_id"`
	FromStatus ApprovalStatus `json:"from_status"`
	ToStatus   ApprovalStatus `json:"to_status"`
	Reviewer   string         `json:"reviewer"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
}
