package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// SupplyPathRepository implements port.SupplyPathRepository.
type SupplyPathRepository struct {
	pool Pool
}

var _ port.SupplyPathRepository = (*SupplyPathRepository)(nil)

func NewSupplyPathRepository(pool Pool) *SupplyPathRepository {
	return &SupplyPathRepository{pool: pool}
}

const supplyPathColumns = `id, dsp, exchange, ssp, dsp_fee_pct, exchange_fee_pct, ssp_fee_pct,
       measurement_cpm, estimated_win_rate, avg_latency_ms, notes`

func scanSupplyPath(row pgx.Row) (domain.SupplyPath, error) {
	var p domain.SupplyPath
	err := row.Scan(&p.ID, &p.DSP, &p.Exchange, &p.SSP, &p.DSPFeePct, &p.ExchangeFeePct, &p.SSPFeePct,
		&p.MeasurementCPM, &p.EstimatedWinRate, &p.AvgLatencyMS, &p.Notes)
	return p, err
}

// ListSupplyPaths returns every path ordered by DSP then SSP.
func (r *SupplyPathRepository) ListSupplyPaths(ctx context.Context) ([]domain.SupplyPath, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+supplyPathColumns+` FROM supply_paths ORDER BY dsp, ssp, id`)
	if err != nil {
		return nil, eris.Wrap(err, "select supply paths")
	}
	paths, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SupplyPath, error) {
		return scanSupplyPath(row)
	})
	return paths, eris.Wrap(err, "scan supply paths")
}

// GetSupplyPath returns a path by id.
func (r *SupplyPathRepository) GetSupplyPath(ctx context.Context, id int64) (*domain.SupplyPath, error) {
	p, err := scanSupplyPath(r.pool.QueryRow(ctx, `SELECT `+supplyPathColumns+` FROM supply_paths WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "select supply path %d", id)
	}
	return &p, nil
}

// CreateSupplyPath inserts a path and fills its ID.
func (r *SupplyPathRepository) CreateSupplyPath(ctx context.Context, p *domain.SupplyPath) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO supply_paths
    (dsp, exchange, ssp, dsp_fee_pct, exchange_fee_pct, ssp_fee_pct, measurement_cpm, estimated_win_rate, avg_latency_ms, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		p.DSP, p.Exchange, p.SSP, p.DSPFeePct, p.ExchangeFeePct, p.SSPFeePct,
		p.MeasurementCPM, p.EstimatedWinRate, p.AvgLatencyMS, p.Notes,
	).Scan(&p.ID)
	return eris.Wrap(err, "insert supply path")
}
