package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
	"dreamtraffic/internal/core/port/mocks"
)

func TestCreateCampaign_Validation(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	svc := NewCreativeUseCase(repo, discardLogger())
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateCampaign(ctx, &domain.Campaign{}), port.ErrInvalidArgument)
	assert.ErrorIs(t, svc.CreateCampaign(ctx, &domain.Campaign{Name: "x", Budget: -1}), port.ErrInvalidArgument)
	assert.ErrorIs(t, svc.CreateCampaign(ctx, &domain.Campaign{Name: "x", Placements: []domain.PlacementType{"banner"}}), port.ErrInvalidArgument)

	c := &domain.Campaign{Name: "Spring", Placements: []domain.PlacementType{domain.PlacementOLV}}
	repo.EXPECT().CreateCampaign(mock.Anything, c).Run(func(_ context.Context, c *domain.Campaign) { c.ID = 3 }).Return(nil)
	require.NoError(t, svc.CreateCampaign(ctx, c))
	assert.Equal(t, int64(3), c.ID)
}

func TestCreateCreative_DefaultsAndDraft(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	svc := NewCreativeUseCase(repo, discardLogger())

	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
	repo.EXPECT().CreateCreative(mock.Anything, mock.AnythingOfType("*domain.Creative")).Return(nil)

	c := &domain.Creative{CampaignID: 1, Name: "hero", ApprovalStatus: domain.StatusApproved}
	require.NoError(t, svc.CreateCreative(context.Background(), c))
	assert.Equal(t, domain.StatusDraft, c.ApprovalStatus)
	assert.Equal(t, domain.PlacementOLV, c.Placement)
	assert.Equal(t, 1920, c.Width)
	assert.Equal(t, 1080, c.Height)
	assert.Equal(t, "16:9", c.AspectRatio)
	assert.Equal(t, "mp4", c.Format)
}

func TestCreateCreative_UnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	svc := NewCreativeUseCase(repo, discardLogger())
	repo.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, nil)

	err := svc.CreateCreative(context.Background(), &domain.Creative{CampaignID: 9})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestListCreatives(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	svc := NewCreativeUseCase(repo, discardLogger())
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1}, nil)
	repo.EXPECT().ListCreatives(mock.Anything, int64(1)).Return(nil, nil)

	list, err := svc.ListCreatives(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestGetCreative_NotFound(t *testing.T) {
	repo := mocks.NewMockCreativeRepository(t)
	svc := NewCreativeUseCase(repo, discardLogger())
	repo.EXPECT().GetCreative(mock.Anything, int64(4)).Return(nil, nil)

	_, err := svc.GetCreative(context.Background(), 4)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
