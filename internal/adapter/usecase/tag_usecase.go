package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
	"dreamtraffic/internal/vast"
)

// TagUseCase renders VAST tags for stored creatives. Unlike the generator,
// which skips unknown vendor keys, it rejects them with port.ErrNotFound so
// a typo never silently drops measurement.
type TagUseCase struct {
	repo    port.CreativeRepository
	cache   port.TagCache
	gen     *vast.Generator
	vendors *catalog.VendorRegistry
	tagBase string
	logger  *slog.Logger
}

// NewTagUseCase creates a tag use case. tagBase is the public URL prefix
// tags are served under.
func NewTagUseCase(repo port.CreativeRepository, cache port.TagCache, gen *vast.Generator, vendors *catalog.VendorRegistry, tagBase string, logger *slog.Logger) *TagUseCase {
	return &TagUseCase{
		repo:    repo,
		cache:   cache,
		gen:     gen,
		vendors: vendors,
		tagBase: strings.TrimRight(tagBase, "/"),
		logger:  logger,
	}
}

// vendorKeys defaults a nil selection to every registered vendor. A
// non-nil empty selection renders the tag without verification.
func (u *TagUseCase) vendorKeys(keys []string) ([]string, error) {
	if keys == nil {
		for _, v := range u.vendors.List() {
			keys = append(keys, v.Key)
		}
		return keys, nil
	}
	if len(keys) == 0 {
		return []string{}, nil
	}
	if err := u.vendors.Validate(keys); err != nil {
		return nil, err
	}
	return slices.Clone(keys), nil
}

// GenerateCreativeTag renders, caches and records the InLine tag of a
// creative.
func (u *TagUseCase) GenerateCreativeTag(ctx context.Context, creativeID int64, vendorKeys []string) (*port.TagResult, error) {
	keys, err := u.vendorKeys(vendorKeys)
	if err != nil {
		return nil, err
	}
	cr, err := u.repo.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "get creative %d", creativeID)
	}
	if cr == nil {
		return nil, eris.Wrapf(port.ErrNotFound, "creative %d", creativeID)
	}
	advertiser := ""
	camp, err := u.repo.GetCampaign(ctx, cr.CampaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "get campaign %d", cr.CampaignID)
	}
	if camp != nil {
		advertiser = camp.Advertiser
	}

	xml, err := u.gen.Inline(vast.InlineRequest{
		VideoURL:   cr.VideoURL,
		Duration:   cr.VastDuration(),
		Title:      cr.Name,
		Advertiser: advertiser,
		VendorKeys: keys,
	})
	if err != nil {
		return nil, err
	}
	vastURL := fmt.Sprintf("%s/inline/%d", u.tagBase, creativeID)
	config, err := json.Marshal(keys)
	if err != nil {
		return nil, eris.Wrap(err, "encode measurement config")
	}
	if err = u.repo.UpdateTag(ctx, creativeID, vastURL, string(config)); err != nil {
		return nil, eris.Wrapf(err, "store tag of creative %d", creativeID)
	}
	// the tag URL is stored first so a cached tag always has a creative
	// pointing at it
	if err = u.cache.PutInline(ctx, creativeID, xml); err != nil {
		return nil, eris.Wrapf(err, "cache tag of creative %d", creativeID)
	}
	u.logger.Info("vast tag generated",
		slog.Int64("creative_id", creativeID),
		slog.String("vast_url", vastURL),
		slog.Any("vendors", keys))
	return &port.TagResult{CreativeID: creativeID, VastURL: vastURL, Vendors: keys, XML: xml}, nil
}

// GetCreativeTag serves a previously generated InLine tag.
func (u *TagUseCase) GetCreativeTag(ctx context.Context, creativeID int64) (string, error) {
	xml, err := u.cache.GetInline(ctx, creativeID)
	if err != nil {
		return "", eris.Wrapf(err, "tag of creative %d", creativeID)
	}
	return xml, nil
}

// GenerateWrapper renders a Wrapper tag around uri.
func (u *TagUseCase) GenerateWrapper(_ context.Context, uri string, vendorKeys []string) (string, error) {
	keys, err := u.vendorKeys(vendorKeys)
	if err != nil {
		return "", err
	}
	return u.gen.Wrapper(vast.WrapperRequest{TagURI: uri, VendorKeys: keys})
}

func (u *TagUseCase) ListVendors(_ context.Context) []domain.VendorConfig {
	return u.vendors.List()
}
