package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// TraffickingUseCase uploads approved creatives to DSPs through their
// adapters and records the outcome.
type TraffickingUseCase struct {
	creatives port.CreativeRepository
	records   port.TraffickingRepository
	approval  port.ApprovalUseCase
	adapters  map[string]port.DSPAdapter
	logger    *slog.Logger
}

// NewTraffickingUseCase creates a trafficking use case. adapters is keyed
// by DSP name.
func NewTraffickingUseCase(creatives port.CreativeRepository, records port.TraffickingRepository, approval port.ApprovalUseCase, adapters map[string]port.DSPAdapter, logger *slog.Logger) *TraffickingUseCase {
	return &TraffickingUseCase{
		creatives: creatives,
		records:   records,
		approval:  approval,
		adapters:  adapters,
		logger:    logger,
	}
}

// TrafficCreative uploads the creative to every DSP in dsps. All adapters
// are resolved before the first upload so an unknown DSP uploads nothing.
func (u *TraffickingUseCase) TrafficCreative(ctx context.Context, creativeID int64, dsps []string) ([]domain.TraffickingRecord, error) {
	if len(dsps) == 0 {
		return nil, eris.Wrap(port.ErrInvalidArgument, "at least one dsp is required")
	}
	adapters := make([]port.DSPAdapter, 0, len(dsps))
	for _, name := range dsps {
		a, ok := u.adapters[name]
		if !ok {
			return nil, eris.Wrapf(port.ErrNotFound, "dsp adapter %q", name)
		}
		adapters = append(adapters, a)
	}

	cr, err := u.creatives.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "get creative %d", creativeID)
	}
	if cr == nil {
		return nil, eris.Wrapf(port.ErrNotFound, "creative %d", creativeID)
	}
	if cr.ApprovalStatus != domain.StatusApproved {
		return nil, eris.Wrapf(port.ErrNotApproved, "creative %d is %s", creativeID, cr.ApprovalStatus)
	}
	campaignName := "Unknown Campaign"
	camp, err := u.creatives.GetCampaign(ctx, cr.CampaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "get campaign %d", cr.CampaignID)
	}
	if camp != nil {
		campaignName = camp.Name
	}

	req := domain.UploadRequest{
		VideoURL:     cr.VideoURL,
		VastURL:      cr.VastURL,
		Duration:     cr.Duration,
		Width:        cr.Width,
		Height:       cr.Height,
		Placement:    cr.Placement,
		CampaignName: campaignName,
	}
	records := make([]domain.TraffickingRecord, 0, len(adapters))
	for _, a := range adapters {
		res, err := a.UploadCreative(ctx, req)
		if err != nil {
			return records, eris.Wrapf(err, "upload creative %d to %s", creativeID, a.Name())
		}
		rec, err := newRecord(creativeID, res)
		if err != nil {
			return records, err
		}
		if err = u.records.CreateTraffickingRecord(ctx, &rec); err != nil {
			return records, eris.Wrapf(err, "store trafficking record for %s", a.Name())
		}
		u.logger.Info("creative uploaded",
			slog.Int64("creative_id", creativeID),
			slog.String("dsp", res.DSP),
			slog.String("dsp_creative_id", res.CreativeID))
		records = append(records, rec)
	}

	if _, err = u.approval.MarkTrafficked(ctx, creativeID); err != nil {
		return records, err
	}
	return records, nil
}

func newRecord(creativeID int64, res *domain.UploadResult) (domain.TraffickingRecord, error) {
	reqPayload, err := json.Marshal(res.RequestPayload)
	if err != nil {
		return domain.TraffickingRecord{}, eris.Wrap(err, "encode request payload")
	}
	respPayload, err := json.Marshal(res.ResponsePayload)
	if err != nil {
		return domain.TraffickingRecord{}, eris.Wrap(err, "encode response payload")
	}
	return domain.TraffickingRecord{
		CreativeID:      creativeID,
		DSP:             res.DSP,
		DSPCreativeID:   res.CreativeID,
		DSPAssetID:      res.AssetID,
		VastURL:         res.VastURL,
		AuditStatus:     res.AuditStatus,
		Placement:       res.Placement,
		RequestPayload:  reqPayload,
		ResponsePayload: respPayload,
	}, nil
}

// RefreshAuditStatus polls each record's DSP and stores changed statuses.
// Records whose DSP has no adapter are returned unchanged. DSPs are polled
// concurrently; stored records are updated in id order once every poll has
// answered.
func (u *TraffickingUseCase) RefreshAuditStatus(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error) {
	records, err := u.records.ListTraffickingRecords(ctx, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "list trafficking records of creative %d", creativeID)
	}

	statuses := make([]domain.AuditStatus, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		a, ok := u.adapters[rec.DSP]
		if !ok {
			u.logger.Warn("no adapter for trafficking record", slog.Int64("record_id", rec.ID), slog.String("dsp", rec.DSP))
			statuses[i] = rec.AuditStatus
			continue
		}
		g.Go(func() error {
			status, err := a.CheckAuditStatus(gctx, rec.DSPCreativeID)
			if err != nil {
				return eris.Wrapf(err, "check audit status on %s", rec.DSP)
			}
			statuses[i] = status
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		if statuses[i] == rec.AuditStatus {
			continue
		}
		if err = u.records.UpdateAuditStatus(ctx, rec.ID, statuses[i]); err != nil {
			return nil, eris.Wrapf(err, "update trafficking record %d", rec.ID)
		}
		rec.AuditStatus = statuses[i]
	}
	if records == nil {
		records = []domain.TraffickingRecord{}
	}
	return records, nil
}

// ListRecords returns the stored trafficking records of a creative.
func (u *TraffickingUseCase) ListRecords(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error) {
	records, err := u.records.ListTraffickingRecords(ctx, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "list trafficking records of creative %d", creativeID)
	}
	if records == nil {
		records = []domain.TraffickingRecord{}
	}
	return records, nil
}
