package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/adapter/dsp"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
	"dreamtraffic/internal/core/port/mocks"
)

type traffickingFixture struct {
	svc       *TraffickingUseCase
	creatives *mocks.MockCreativeRepository
	records   *mocks.MockTraffickingRepository
	store     *memStore
}

func newTraffickingFixture(t *testing.T, status domain.ApprovalStatus) *traffickingFixture {
	creatives := mocks.NewMockCreativeRepository(t)
	records := mocks.NewMockTraffickingRepository(t)
	store := &memStore{status: status}
	creatives.EXPECT().TransitionStatus(mock.Anything, mock.Anything).RunAndReturn(store.transition).Maybe()
	creatives.EXPECT().GetCreative(mock.Anything, int64(1)).RunAndReturn(func(ctx context.Context, id int64) (*domain.Creative, error) {
		cr, _ := store.creative(ctx, id)
		cr.CampaignID = 2
		cr.VideoURL = "https://cdn.example.test/v.mp4"
		cr.VastURL = "https://tags.example.test/inline/1"
		cr.Duration = 30
		cr.Width, cr.Height = 1920, 1080
		cr.Placement = domain.PlacementOLV
		return cr, nil
	}).Maybe()
	creatives.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(&domain.Campaign{ID: 2, Name: "Spring"}, nil).Maybe()

	approval := NewApprovalUseCase(creatives, discardLogger())
	svc := NewTraffickingUseCase(creatives, records, approval, dsp.Defaults(), discardLogger())
	return &traffickingFixture{svc: svc, creatives: creatives, records: records, store: store}
}

func TestTrafficCreative(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusApproved)

	var stored []*domain.TraffickingRecord
	f.records.EXPECT().CreateTraffickingRecord(mock.Anything, mock.AnythingOfType("*domain.TraffickingRecord")).
		Run(func(_ context.Context, r *domain.TraffickingRecord) {
			r.ID = int64(len(stored) + 1)
			stored = append(stored, r)
		}).
		Return(nil).Times(2)

	got, err := f.svc.TrafficCreative(context.Background(), 1, []string{"amazon", "stackadapt"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "amazon", got[0].DSP)
	assert.Equal(t, "stackadapt", got[1].DSP)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, domain.AuditPending, got[0].AuditStatus)
	assert.Equal(t, "https://tags.example.test/inline/1", got[0].VastURL)

	var req map[string]any
	require.NoError(t, json.Unmarshal(got[0].RequestPayload, &req))
	assert.Equal(t, "Spring", req["campaignName"])

	assert.Equal(t, domain.StatusTrafficked, f.store.status)
	require.Len(t, f.store.events, 1)
	assert.Equal(t, ReviewerTrafficking, f.store.events[0].Reviewer)
}

func TestTrafficCreative_NotApproved(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusPendingReview)

	_, err := f.svc.TrafficCreative(context.Background(), 1, []string{"amazon"})
	assert.ErrorIs(t, err, port.ErrNotApproved)
	assert.Equal(t, domain.StatusPendingReview, f.store.status)
	f.records.AssertNotCalled(t, "CreateTraffickingRecord", mock.Anything, mock.Anything)
}

func TestTrafficCreative_UnknownDSPUploadsNothing(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusApproved)

	_, err := f.svc.TrafficCreative(context.Background(), 1, []string{"amazon", "yahoo"})
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.Contains(t, err.Error(), "yahoo")
	assert.Equal(t, domain.StatusApproved, f.store.status)
}

func TestTrafficCreative_NoDSPs(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusApproved)

	_, err := f.svc.TrafficCreative(context.Background(), 1, nil)
	assert.ErrorIs(t, err, port.ErrInvalidArgument)
}

func TestTrafficCreative_StoreFailureKeepsApproved(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusApproved)
	f.records.EXPECT().CreateTraffickingRecord(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.TrafficCreative(context.Background(), 1, []string{"dv360"})
	require.Error(t, err)
	assert.Equal(t, domain.StatusApproved, f.store.status)
}

func TestRefreshAuditStatus(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusTrafficked)
	f.records.EXPECT().ListTraffickingRecords(mock.Anything, int64(1)).Return([]domain.TraffickingRecord{
		{ID: 1, CreativeID: 1, DSP: "amazon", DSPCreativeID: "amzn-cr-1", AuditStatus: domain.AuditPending},
		{ID: 2, CreativeID: 1, DSP: "stackadapt", DSPCreativeID: "sa-cr-1", AuditStatus: domain.AuditPending},
		{ID: 3, CreativeID: 1, DSP: "legacy", DSPCreativeID: "x", AuditStatus: domain.AuditApproved},
	}, nil)
	f.records.EXPECT().UpdateAuditStatus(mock.Anything, int64(1), domain.AuditUnderReview).Return(nil).Once()

	got, err := f.svc.RefreshAuditStatus(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.AuditUnderReview, got[0].AuditStatus)
	assert.Equal(t, domain.AuditPending, got[1].AuditStatus)
	assert.Equal(t, domain.AuditApproved, got[2].AuditStatus)
}

type unreachableDSP struct{ port.DSPAdapter }

func (unreachableDSP) CheckAuditStatus(context.Context, string) (domain.AuditStatus, error) {
	return "", errors.New("dsp unreachable")
}

func TestRefreshAuditStatus_PollFailureStoresNothing(t *testing.T) {
	records := mocks.NewMockTraffickingRepository(t)
	adapters := dsp.Defaults()
	adapters["thetradedesk"] = unreachableDSP{}
	svc := NewTraffickingUseCase(mocks.NewMockCreativeRepository(t), records, nil, adapters, discardLogger())

	records.EXPECT().ListTraffickingRecords(mock.Anything, int64(1)).Return([]domain.TraffickingRecord{
		{ID: 1, CreativeID: 1, DSP: "amazon", DSPCreativeID: "amzn-cr-1", AuditStatus: domain.AuditPending},
		{ID: 2, CreativeID: 1, DSP: "thetradedesk", DSPCreativeID: "ttd-cr-1", AuditStatus: domain.AuditPending},
	}, nil)

	_, err := svc.RefreshAuditStatus(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thetradedesk")
	records.AssertNotCalled(t, "UpdateAuditStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListRecords(t *testing.T) {
	f := newTraffickingFixture(t, domain.StatusTrafficked)
	f.records.EXPECT().ListTraffickingRecords(mock.Anything, int64(1)).Return(nil, nil)

	got, err := f.svc.ListRecords(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
