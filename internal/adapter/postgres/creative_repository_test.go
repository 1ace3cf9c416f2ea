package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

var creativeCols = []string{
	"id", "campaign_id", "name", "prompt", "video_url", "duration_seconds", "width", "height",
	"aspect_ratio", "format", "placement_type", "approval_status", "measurement_config", "vast_url", "created_at",
}

func TestCreateCampaign(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := &domain.Campaign{Name: "Spring", Advertiser: "Acme", Placements: []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV}, Budget: 50000}
	mock.ExpectQuery("INSERT INTO campaigns").
		WithArgs("Spring", "Acme", "", "", []string{"olv", "stv"}, int64(50000), (*time.Time)(nil), (*time.Time)(nil), "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	require.NoError(t, repo.CreateCampaign(context.Background(), c))
	assert.Equal(t, int64(4), c.ID)
	assert.Equal(t, now, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCampaign(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "advertiser", "objective", "audience", "placements", "budget", "flight_start", "flight_end", "brief", "created_at"}).
			AddRow(int64(1), "Spring", "Acme", "awareness", "adults", []string{"olv"}, int64(100), &start, (*time.Time)(nil), "brief", start))
	mock.ExpectQuery("SELECT .+ FROM campaigns WHERE id").
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, []domain.PlacementType{domain.PlacementOLV}, c.Placements)
	assert.Equal(t, start, c.FlightStart)
	assert.True(t, c.FlightEnd.IsZero())

	missing, err := repo.GetCampaign(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCreative(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM creatives WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(creativeCols).
			AddRow(int64(3), int64(1), "hero", "", "https://cdn/v.mp4", 30, 1920, 1080, "16:9", "mp4", "stv", "approved", `["ias"]`, "", now))

	c, err := repo.GetCreative(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.PlacementSTV, c.Placement)
	assert.Equal(t, domain.StatusApproved, c.ApprovalStatus)
	assert.Equal(t, 30, c.Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCreatives(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM creatives WHERE campaign_id = \\$1 ORDER BY id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(creativeCols).
			AddRow(int64(1), int64(1), "a", "", "", 15, 1920, 1080, "16:9", "mp4", "olv", "draft", "", "", now).
			AddRow(int64(2), int64(1), "b", "", "", 30, 1920, 1080, "16:9", "mp4", "olv", "pending_review", "", "", now))

	list, err := repo.ListCreatives(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.StatusPendingReview, list[1].ApprovalStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTag(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)

	mock.ExpectExec("UPDATE creatives SET vast_url").
		WithArgs("https://tags/inline/1", `["ias"]`, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE creatives SET vast_url").
		WithArgs("https://tags/inline/9", `[]`, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateTag(context.Background(), 1, "https://tags/inline/1", `["ias"]`))
	err := repo.UpdateTag(context.Background(), 9, "https://tags/inline/9", `[]`)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func submitCmd(check func(domain.ApprovalStatus) error) port.TransitionCmd {
	return port.TransitionCmd{
		CreativeID: 1,
		To:         domain.StatusPendingReview,
		Reviewer:   "creator",
		Notes:      "Submitted for compliance review",
		Check:      check,
	}
}

func TestTransitionStatus_Commits(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	now := time.Now().UTC()

	var checked domain.ApprovalStatus
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT approval_status FROM creatives WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"approval_status"}).AddRow("draft"))
	mock.ExpectExec("UPDATE creatives SET approval_status").
		WithArgs("pending_review", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO approval_events").
		WithArgs(int64(1), "draft", "pending_review", "creator", "Submitted for compliance review").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
	mock.ExpectCommit()

	ev, err := repo.TransitionStatus(context.Background(), submitCmd(func(from domain.ApprovalStatus) error {
		checked = from
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, checked)
	assert.Equal(t, &domain.ApprovalEvent{
		ID:         10,
		CreativeID: 1,
		FromStatus: domain.StatusDraft,
		ToStatus:   domain.StatusPendingReview,
		Reviewer:   "creator",
		Notes:      "Submitted for compliance review",
		CreatedAt:  now,
	}, ev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_CheckFailureRollsBack(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT approval_status FROM creatives").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"approval_status"}).AddRow("approved"))
	mock.ExpectRollback()

	rejected := &port.InvalidTransitionError{From: domain.StatusApproved, To: domain.StatusPendingReview}
	_, err := repo.TransitionStatus(context.Background(), submitCmd(func(domain.ApprovalStatus) error {
		return rejected
	}))
	assert.Same(t, rejected, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT approval_status FROM creatives").
		WithArgs(int64(1)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.TransitionStatus(context.Background(), submitCmd(func(domain.ApprovalStatus) error { return nil }))
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_InsertFailureRollsBack(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT approval_status FROM creatives").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"approval_status"}).AddRow("draft"))
	mock.ExpectExec("UPDATE creatives SET approval_status").
		WithArgs("pending_review", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO approval_events").
		WithArgs(int64(1), "draft", "pending_review", "creator", "Submitted for compliance review").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	ev, err := repo.TransitionStatus(context.Background(), submitCmd(func(domain.ApprovalStatus) error { return nil }))
	require.Error(t, err)
	assert.Nil(t, ev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus_SerializationFailureIsConflict(t *testing.T) {
	for _, code := range []string{"40001", "40P01"} {
		t.Run(code, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewCreativeRepository(mock)

			mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
			mock.ExpectQuery("SELECT approval_status FROM creatives").
				WithArgs(int64(1)).
				WillReturnError(&pgconn.PgError{Code: code, Message: "could not serialize access due to concurrent update"})
			mock.ExpectRollback()

			ev, err := repo.TransitionStatus(context.Background(), submitCmd(func(domain.ApprovalStatus) error { return nil }))
			assert.Nil(t, ev)
			assert.ErrorIs(t, err, port.ErrConflict)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransitionStatus_CommitConflict(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	now := time.Now().UTC()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery("SELECT approval_status FROM creatives").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"approval_status"}).AddRow("draft"))
	mock.ExpectExec("UPDATE creatives SET approval_status").
		WithArgs("pending_review", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO approval_events").
		WithArgs(int64(1), "draft", "pending_review", "creator", "Submitted for compliance review").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001"})

	ev, err := repo.TransitionStatus(context.Background(), submitCmd(func(domain.ApprovalStatus) error { return nil }))
	assert.Nil(t, ev)
	assert.ErrorIs(t, err, port.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListApprovalEvents(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCreativeRepository(mock)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM approval_events WHERE creative_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "creative_id", "from_status", "to_status", "reviewer", "notes", "created_at"}).
			AddRow(int64(1), int64(1), "draft", "pending_review", "creator", "", t0).
			AddRow(int64(2), int64(1), "pending_review", "approved", "compliance_reviewer", "ok", t0.Add(time.Minute)))

	events, err := repo.ListApprovalEvents(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.StatusApproved, events[1].ToStatus)
	assert.Equal(t, events[0].ToStatus, events[1].FromStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
