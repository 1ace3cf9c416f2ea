package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

var supplyCols = []string{
	"id", "dsp", "exchange", "ssp", "dsp_fee_pct", "exchange_fee_pct", "ssp_fee_pct",
	"measurement_cpm", "estimated_win_rate", "avg_latency_ms", "notes",
}

func TestListSupplyPaths(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSupplyPathRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM supply_paths ORDER BY dsp, ssp").
		WillReturnRows(pgxmock.NewRows(supplyCols).
			AddRow(int64(1), "amazon", "direct", "freewheel", 12.0, 0.0, 18.0, 0.02, 0.12, 95, "pods").
			AddRow(int64(2), "amazon", "bidswitch", "magnite", 12.0, 2.0, 15.0, 0.02, 0.18, 85, ""))

	paths, err := repo.ListSupplyPaths(context.Background())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "freewheel", paths[0].SSP)
	assert.Equal(t, 95, paths[0].AvgLatencyMS)
	assert.Equal(t, 15.0, paths[1].SSPFeePct)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSupplyPath_Missing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSupplyPathRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM supply_paths WHERE id").
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	p, err := repo.GetSupplyPath(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSupplyPath(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSupplyPathRepository(mock)

	p := &domain.SupplyPath{DSP: "dv360", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 14, ExchangeFeePct: 2, SSPFeePct: 15, MeasurementCPM: 0.025, EstimatedWinRate: 0.15, AvgLatencyMS: 90}
	mock.ExpectQuery("INSERT INTO supply_paths").
		WithArgs("dv360", "bidswitch", "magnite", 14.0, 2.0, 15.0, 0.025, 0.15, 90, "").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	require.NoError(t, repo.CreateSupplyPath(context.Background(), p))
	assert.Equal(t, int64(12), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTraffickingRecord(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTraffickingRepository(mock)
	now := time.Now().UTC()

	rec := &domain.TraffickingRecord{
		CreativeID: 1, DSP: "amazon", DSPCreativeID: "amzn-cr-1", DSPAssetID: "amzn-asset-1",
		AuditStatus: domain.AuditPending, Placement: domain.PlacementOLV,
		RequestPayload: []byte(`{"a":1}`),
	}
	mock.ExpectQuery("INSERT INTO trafficking_records").
		WithArgs(int64(1), "amazon", "amzn-cr-1", "amzn-asset-1", "", "pending", "olv", []byte(`{"a":1}`), []byte("{}")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	require.NoError(t, repo.CreateTraffickingRecord(context.Background(), rec))
	assert.Equal(t, int64(5), rec.ID)
	assert.Equal(t, now, rec.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTraffickingRecords(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTraffickingRepository(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM trafficking_records WHERE creative_id").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "creative_id", "dsp", "dsp_creative_id", "dsp_asset_id", "vast_url", "audit_status", "placement_type", "request_payload", "response_payload", "created_at", "updated_at"}).
			AddRow(int64(1), int64(1), "dv360", "dv360-cr-1", "dv360-asset-1", "", "under_review", "stv", []byte("{}"), []byte("{}"), now, now))

	records, err := repo.ListTraffickingRecords(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.AuditUnderReview, records[0].AuditStatus)
	assert.Equal(t, domain.PlacementSTV, records[0].Placement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAuditStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTraffickingRepository(mock)

	mock.ExpectExec("UPDATE trafficking_records SET audit_status").
		WithArgs("approved", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE trafficking_records SET audit_status").
		WithArgs("approved", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateAuditStatus(context.Background(), 1, domain.AuditApproved))
	assert.ErrorIs(t, repo.UpdateAuditStatus(context.Background(), 2, domain.AuditApproved), port.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
