package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		from ApprovalStatus
		want []ApprovalStatus
	}{
		{StatusDraft, []ApprovalStatus{StatusPendingReview}},
		{StatusPendingReview, []ApprovalStatus{StatusApproved, StatusRevisionRequested}},
		{StatusRevisionRequested, []ApprovalStatus{StatusPendingReview}},
		{StatusApproved, []ApprovalStatus{StatusTrafficked}},
		{StatusTrafficked, []ApprovalStatus{StatusActive, StatusPaused}},
		{StatusActive, []ApprovalStatus{StatusPaused, StatusArchived}},
		{StatusPaused, []ApprovalStatus{StatusActive, StatusArchived}},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.NextStatuses())
			for _, to := range tt.want {
				assert.True(t, tt.from.CanTransition(to))
			}
		})
	}
}

func TestArchivedIsTerminal(t *testing.T) {
	assert.Empty(t, StatusArchived.NextStatuses())
	for s := range transitions {
		assert.False(t, StatusArchived.CanTransition(s), "archived -> %s", s)
	}
}

func TestNextStatusesReturnsCopy(t *testing.T) {
	next := StatusDraft.NextStatuses()
	next[0] = StatusArchived
	assert.Equal(t, []ApprovalStatus{StatusPendingReview}, StatusDraft.NextStatuses())
}

func TestUnknownStatus(t *testing.T) {
	s := ApprovalStatus("bogus")
	assert.False(t, s.Valid())
	assert.Empty(t, s.NextStatuses())
	assert.False(t, StatusDraft.CanTransition(s))
}

func TestVastDuration(t *testing.T) {
	assert.Equal(t, "00:00:30", Creative{Duration: 30}.VastDuration())
	assert.Equal(t, "00:01:05", Creative{Duration: 65}.VastDuration())
	assert.Equal(t, "01:00:00", Creative{Duration: 3600}.VastDuration())
	assert.Equal(t, "00:00:00", Creative{Duration: -4}.VastDuration())
}
