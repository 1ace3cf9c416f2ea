package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// TraffickingRepository implements port.TraffickingRepository.
type TraffickingRepository struct {
	pool Pool
}

var _ port.TraffickingRepository = (*TraffickingRepository)(nil)

func NewTraffickingRepository(pool Pool) *TraffickingRepository {
	return &TraffickingRepository{pool: pool}
}

func jsonOrEmpty(b []byte) []byte {
	if len(b) == 0 {
		return []byte("{}")
	}
	return b
}

// CreateTraffickingRecord inserts a record and fills its generated fields.
func (r *TraffickingRepository) CreateTraffickingRecord(ctx context.Context, rec *domain.TraffickingRecord) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO trafficking_records
    (creative_id, dsp, dsp_creative_id, dsp_asset_id, vast_url, audit_status, placement_type, request_payload, response_payload)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, created_at, updated_at`,
		rec.CreativeID, rec.DSP, rec.DSPCreativeID, rec.DSPAssetID, rec.VastURL, string(rec.AuditStatus),
		string(rec.Placement), jsonOrEmpty(rec.RequestPayload), jsonOrEmpty(rec.ResponsePayload),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	return eris.Wrap(err, "insert trafficking record")
}

// ListTraffickingRecords returns the records of a creative ordered by id.
func (r *TraffickingRepository) ListTraffickingRecords(ctx context.Context, creativeID int64) ([]domain.TraffickingRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, creative_id, dsp, dsp_creative_id, dsp_asset_id, vast_url, audit_status,
       placement_type, request_payload, response_payload, created_at, updated_at
FROM trafficking_records WHERE creative_id = $1 ORDER BY id`, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "select trafficking records of creative %d", creativeID)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TraffickingRecord, error) {
		var (
			rec               domain.TraffickingRecord
			status, placement string
		)
		err := row.Scan(&rec.ID, &rec.CreativeID, &rec.DSP, &rec.DSPCreativeID, &rec.DSPAssetID, &rec.VastURL, &status,
			&placement, &rec.RequestPayload, &rec.ResponsePayload, &rec.CreatedAt, &rec.UpdatedAt)
		rec.AuditStatus = domain.AuditStatus(status)
		rec.Placement = domain.PlacementType(placement)
		return rec, err
	})
	return records, eris.Wrap(err, "scan trafficking records")
}

// UpdateAuditStatus stores the latest DSP audit status of a record.
func (r *TraffickingRepository) UpdateAuditStatus(ctx context.Context, id int64, status domain.AuditStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE trafficking_records SET audit_status = $1, updated_at = now() WHERE id = $2`,
		string(status), id)
	if err != nil {
		return eris.Wrapf(err, "update trafficking record %d", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(port.ErrNotFound, "trafficking record %d", id)
	}
	return nil
}
