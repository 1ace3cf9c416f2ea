package usecase

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// CreativeUseCase stores campaigns and creatives.
type CreativeUseCase struct {
	repo   port.CreativeRepository
	logger *slog.Logger
}

func NewCreativeUseCase(repo port.CreativeRepository, logger *slog.Logger) *CreativeUseCase {
	return &CreativeUseCase{repo: repo, logger: logger}
}

func (u *CreativeUseCase) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Name == "" {
		return eris.Wrap(port.ErrInvalidArgument, "campaign name is required")
	}
	if c.Budget < 0 {
		return eris.Wrap(port.ErrInvalidArgument, "campaign budget must be non-negative")
	}
	for _, p := range c.Placements {
		if !p.Valid() {
			return eris.Wrapf(port.ErrInvalidArgument, "unknown placement type %q", p)
		}
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return eris.Wrap(err, "create campaign")
	}
	u.logger.Info("campaign created", slog.Int64("campaign_id", c.ID), slog.String("name", c.Name))
	return nil
}

func (u *CreativeUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "get campaign %d", id)
	}
	if c == nil {
		return nil, eris.Wrapf(port.ErrNotFound, "campaign %d", id)
	}
	return c, nil
}

// CreateCreative validates and stores c. The status is always forced to
// draft; unset media attributes take the 1080p mp4 defaults.
func (u *CreativeUseCase) CreateCreative(ctx context.Context, c *domain.Creative) error {
	if c.Duration < 0 || c.Width < 0 || c.Height < 0 {
		return eris.Wrap(port.ErrInvalidArgument, "duration and dimensions must be non-negative")
	}
	if c.Placement == "" {
		c.Placement = domain.PlacementOLV
	}
	if !c.Placement.Valid() {
		return eris.Wrapf(port.ErrInvalidArgument, "unknown placement type %q", c.Placement)
	}
	if c.Width == 0 && c.Height == 0 {
		c.Width, c.Height = 1920, 1080
	}
	if c.AspectRatio == "" {
		c.AspectRatio = "16:9"
	}
	if c.Format == "" {
		c.Format = "mp4"
	}
	c.ApprovalStatus = domain.StatusDraft

	if _, err := u.GetCampaign(ctx, c.CampaignID); err != nil {
		return err
	}
	if err := u.repo.CreateCreative(ctx, c); err != nil {
		return eris.Wrap(err, "create creative")
	}
	u.logger.Info("creative created", slog.Int64("creative_id", c.ID), slog.Int64("campaign_id", c.CampaignID))
	return nil
}

func (u *CreativeUseCase) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	c, err := u.repo.GetCreative(ctx, id)
	if err != nil {
		return nil, eris.Wrapf(err, "get creative %d", id)
	}
	if c == nil {
		return nil, eris.Wrapf(port.ErrNotFound, "creative %d", id)
	}
	return c, nil
}

func (u *CreativeUseCase) ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error) {
	if _, err := u.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	list, err := u.repo.ListCreatives(ctx, campaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "list creatives of campaign %d", campaignID)
	}
	if list == nil {
		list = []domain.Creative{}
	}
	return list, nil
}
