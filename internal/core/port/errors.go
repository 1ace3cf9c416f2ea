package port

import (
	"errors"
	"fmt"
	"strings"

	"dreamtraffic/internal/core/domain"
)

var (
	// ErrNotFound is returned when a referenced campaign, creative, supply
	// path or catalog entry does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is matched by every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidArgument reports malformed input to a generator or use case.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotApproved is returned when trafficking a creative that has not
	// been approved.
	ErrNotApproved = errors.New("creative not approved")
	// ErrConflict is returned when a concurrent write aborted the operation;
	// retrying may succeed.
	ErrConflict = errors.New("conflict")
)

// InvalidTransitionError reports a rejected status change together with
// the statuses that were legal from the current one.
type InvalidTransitionError struct {
	From  domain.ApprovalStatus
	To    domain.ApprovalStatus
	Valid []domain.ApprovalStatus
}

func (e *InvalidTransitionError) Error() string {
	valid := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		valid[i] = string(s)
	}
	return fmt.Sprintf("invalid transition: %s -> %s, valid transitions: [%s]",
		e.From, e.To, strings.Join(valid, ", "))
}

// Is lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
