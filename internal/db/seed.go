package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SupplyPaths is the reference fee catalog loaded by Seed.
var SupplyPaths = []domain.SupplyPath{
	{DSP: "amazon", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 12, ExchangeFeePct: 2, SSPFeePct: 15, MeasurementCPM: 0.02, EstimatedWinRate: 0.18, AvgLatencyMS: 85,
		Notes: "ADSP primary: Certified Supply Exchange partner"},
	{DSP: "amazon", Exchange: "bidswitch", SSP: "pubmatic", DSPFeePct: 12, ExchangeFeePct: 2, SSPFeePct: 14, MeasurementCPM: 0.02, EstimatedWinRate: 0.15, AvgLatencyMS: 90,
		Notes: "ADSP + PubMatic cloud infra, OpenWrap"},
	{DSP: "amazon", Exchange: "bidswitch", SSP: "index_exchange", DSPFeePct: 12, ExchangeFeePct: 2, SSPFeePct: 12, MeasurementCPM: 0.02, EstimatedWinRate: 0.20, AvgLatencyMS: 75,
		Notes: "ADSP + Index: header bidding transparency"},
	{DSP: "amazon", Exchange: "direct", SSP: "freewheel", DSPFeePct: 12, ExchangeFeePct: 0, SSPFeePct: 18, MeasurementCPM: 0.02, EstimatedWinRate: 0.12, AvgLatencyMS: 95,
		Notes: "ADSP direct to FreeWheel for premium streaming pods"},
	{DSP: "thetradedesk", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 15, ExchangeFeePct: 2, SSPFeePct: 15, MeasurementCPM: 0.03, EstimatedWinRate: 0.16, AvgLatencyMS: 88,
		Notes: "TTD via Bidswitch to Magnite premium video"},
	{DSP: "thetradedesk", Exchange: "bidswitch", SSP: "pubmatic", DSPFeePct: 15, ExchangeFeePct: 2, SSPFeePct: 14, MeasurementCPM: 0.03, EstimatedWinRate: 0.14, AvgLatencyMS: 92,
		Notes: "TTD standard path"},
	{DSP: "thetradedesk", Exchange: "bidswitch", SSP: "index_exchange", DSPFeePct: 15, ExchangeFeePct: 2, SSPFeePct: 12, MeasurementCPM: 0.03, EstimatedWinRate: 0.19, AvgLatencyMS: 78,
		Notes: "TTD + Index header bidding"},
	{DSP: "dv360", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 14, ExchangeFeePct: 2, SSPFeePct: 15, MeasurementCPM: 0.025, EstimatedWinRate: 0.15, AvgLatencyMS: 90,
		Notes: "DV360 to Magnite via Bidswitch"},
	{DSP: "dv360", Exchange: "direct", SSP: "freewheel", DSPFeePct: 14, ExchangeFeePct: 0, SSPFeePct: 18, MeasurementCPM: 0.025, EstimatedWinRate: 0.10, AvgLatencyMS: 98,
		Notes: "DV360 direct to FreeWheel, Google-preferred path"},
	{DSP: "stackadapt", Exchange: "bidswitch", SSP: "pubmatic", DSPFeePct: 16, ExchangeFeePct: 2.5, SSPFeePct: 14, MeasurementCPM: 0.02, EstimatedWinRate: 0.10, AvgLatencyMS: 100,
		Notes: "StackAdapt contextual path"},
	{DSP: "adelphic", Exchange: "bidswitch", SSP: "magnite", DSPFeePct: 16, ExchangeFeePct: 2.5, SSPFeePct: 15, MeasurementCPM: 0.02, EstimatedWinRate: 0.08, AvgLatencyMS: 105,
		Notes: "Adelphic/Viant household targeting path"},
}

// Seed inserts the reference supply paths and a demo campaign with one
// draft creative. It is idempotent.
func Seed(ctx context.Context, db Execer) error {
	for _, p := range SupplyPaths {
		_, err := db.Exec(ctx, `INSERT INTO supply_paths
    (dsp, exchange, ssp, dsp_fee_pct, exchange_fee_pct, ssp_fee_pct, measurement_cpm, estimated_win_rate, avg_latency_ms, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (dsp, exchange, ssp) DO NOTHING`,
			p.DSP, p.Exchange, p.SSP, p.DSPFeePct, p.ExchangeFeePct, p.SSPFeePct,
			p.MeasurementCPM, p.EstimatedWinRate, p.AvgLatencyMS, p.Notes)
		if err != nil {
			return eris.Wrapf(err, "seed supply path %s/%s", p.DSP, p.SSP)
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, advertiser, objective, audience, placements, budget, brief)
VALUES (1, $1, $2, $3, $4, $5, $6, $7) ON CONFLICT DO NOTHING`,
		"Dream Machine Launch", "Luma AI", "awareness", "creative professionals 25-44",
		[]string{"olv", "stv"}, int64(5_000_000), "Launch spot for the Dream Machine video model")
	if err != nil {
		return eris.Wrap(err, "seed campaign")
	}
	_, err = db.Exec(ctx, `INSERT INTO creatives (id, campaign_id, name, prompt, video_url, duration_seconds, placement_type)
VALUES (1, 1, $1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
		"Launch Hero 30s", "A dreamlike city unfolding at sunrise",
		"https://cdn.dreamtraffic.demo/creatives/launch-hero.mp4", 30, "olv")
	if err != nil {
		return eris.Wrap(err, "seed creative")
	}
	// explicit ids above do not advance the sequences
	_, err = db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('campaigns', 'id'), GREATEST((SELECT max(id) FROM campaigns), 1)),
       setval(pg_get_serial_sequence('creatives', 'id'), GREATEST((SELECT max(id) FROM creatives), 1))`)
	return eris.Wrap(err, "advance sequences")
}
