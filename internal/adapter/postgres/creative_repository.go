package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// CreativeRepository implements port.CreativeRepository on PostgreSQL.
type CreativeRepository struct {
	pool Pool
}

var _ port.CreativeRepository = (*CreativeRepository)(nil)

// NewCreativeRepository returns a new repository instance.
func NewCreativeRepository(pool Pool) *CreativeRepository {
	return &CreativeRepository{pool: pool}
}

const campaignColumns = `id, name, advertiser, objective, audience, placements, budget, flight_start, flight_end, brief, created_at`

const creativeColumns = `id, campaign_id, name, prompt, video_url, duration_seconds, width, height, aspect_ratio,
       format, placement_type, approval_status, measurement_config, vast_url, created_at`

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func placementStrings(ps []domain.PlacementType) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// CreateCampaign inserts a campaign and fills its generated fields.
func (r *CreativeRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (name, advertiser, objective, audience, placements, budget, flight_start, flight_end, brief)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, created_at`,
		c.Name, c.Advertiser, c.Objective, c.Audience, placementStrings(c.Placements), c.Budget,
		nullTime(c.FlightStart), nullTime(c.FlightEnd), c.Brief,
	).Scan(&c.ID, &c.CreatedAt)
	return eris.Wrap(err, "insert campaign")
}

// GetCampaign returns a campaign by id.
func (r *CreativeRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		placements []string
		start, end *time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Advertiser, &c.Objective, &c.Audience, &placements, &c.Budget, &start, &end, &c.Brief, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "select campaign %d", id)
	}
	c.Placements = make([]domain.PlacementType, len(placements))
	for i, p := range placements {
		c.Placements[i] = domain.PlacementType(p)
	}
	if start != nil {
		c.FlightStart = *start
	}
	if end != nil {
		c.FlightEnd = *end
	}
	return &c, nil
}

// CreateCreative inserts a creative and fills its generated fields.
func (r *CreativeRepository) CreateCreative(ctx context.Context, c *domain.Creative) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO creatives
    (campaign_id, name, prompt, video_url, duration_seconds, width, height, aspect_ratio,
     format, placement_type, approval_status, measurement_config, vast_url)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id, created_at`,
		c.CampaignID, c.Name, c.Prompt, c.VideoURL, c.Duration, c.Width, c.Height, c.AspectRatio,
		c.Format, string(c.Placement), string(c.ApprovalStatus), c.MeasurementConfig, c.VastURL,
	).Scan(&c.ID, &c.CreatedAt)
	return eris.Wrap(err, "insert creative")
}

func scanCreative(row pgx.Row) (domain.Creative, error) {
	var (
		c                 domain.Creative
		placement, status string
	)
	err := row.Scan(&c.ID, &c.CampaignID, &c.Name, &c.Prompt, &c.VideoURL, &c.Duration, &c.Width, &c.Height,
		&c.AspectRatio, &c.Format, &placement, &status, &c.MeasurementConfig, &c.VastURL, &c.CreatedAt)
	c.Placement = domain.PlacementType(placement)
	c.ApprovalStatus = domain.ApprovalStatus(status)
	return c, err
}

// GetCreative returns a creative by id.
func (r *CreativeRepository) GetCreative(ctx context.Context, id int64) (*domain.Creative, error) {
	c, err := scanCreative(r.pool.QueryRow(ctx, `SELECT `+creativeColumns+` FROM creatives WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "select creative %d", id)
	}
	return &c, nil
}

// ListCreatives returns the creatives of a campaign ordered by id.
func (r *CreativeRepository) ListCreatives(ctx context.Context, campaignID int64) ([]domain.Creative, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+creativeColumns+` FROM creatives WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, eris.Wrapf(err, "select creatives of campaign %d", campaignID)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		return scanCreative(row)
	})
	return list, eris.Wrap(err, "scan creatives")
}

// UpdateTag stores the generated tag URL and vendor selection.
func (r *CreativeRepository) UpdateTag(ctx context.Context, id int64, vastURL, measurementConfig string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE creatives SET vast_url = $1, measurement_config = $2 WHERE id = $3`,
		vastURL, measurementConfig, id)
	if err != nil {
		return eris.Wrapf(err, "update tag of creative %d", id)
	}
	if tag.RowsAffected() == 0 {
		return eris.Wrapf(port.ErrNotFound, "creative %d", id)
	}
	return nil
}

// Serialization failure and deadlock detected.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// wrapTxErr wraps err, reporting aborted concurrent transactions as
// port.ErrConflict.
func wrapTxErr(err error, format string, args ...any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		(pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected) {
		return eris.Wrapf(port.ErrConflict, format+": %s", append(args, pgErr.Message)...)
	}
	return eris.Wrapf(err, format, args...)
}

// TransitionStatus locks the creative row, validates the move with
// cmd.Check and writes the status together with its audit event. The
// transaction runs at read committed: a caller blocked on the row lock
// re-reads the committed status once the lock is released, so cmd.Check
// sees the winner's status.
func (r *CreativeRepository) TransitionStatus(ctx context.Context, cmd port.TransitionCmd) (ev *domain.ApprovalEvent, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, eris.Wrap(err, "begin transition")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			ev, err = nil, wrapTxErr(cerr, "commit transition of creative %d", cmd.CreativeID)
		}
	}()

	// lock creative
	var from string
	err = tx.QueryRow(ctx, `SELECT approval_status FROM creatives WHERE id = $1 FOR UPDATE`, cmd.CreativeID).Scan(&from)
	if errors.Is(err, pgx.ErrNoRows) {
		err = eris.Wrapf(port.ErrNotFound, "creative %d", cmd.CreativeID)
		return nil, err
	}
	if err != nil {
		return nil, wrapTxErr(err, "lock creative %d", cmd.CreativeID)
	}
	if err = cmd.Check(domain.ApprovalStatus(from)); err != nil {
		return nil, err
	}

	if _, err = tx.Exec(ctx, `UPDATE creatives SET approval_status = $1 WHERE id = $2`, string(cmd.To), cmd.CreativeID); err != nil {
		return nil, wrapTxErr(err, "update status of creative %d", cmd.CreativeID)
	}
	ev = &domain.ApprovalEvent{
		CreativeID: cmd.CreativeID,
		FromStatus: domain.ApprovalStatus(from),
		ToStatus:   cmd.To,
		Reviewer:   cmd.Reviewer,
		Notes:      cmd.Notes,
	}
	err = tx.QueryRow(ctx, `INSERT INTO approval_events (creative_id, from_status, to_status, reviewer, notes)
VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`,
		ev.CreativeID, from, string(ev.ToStatus), ev.Reviewer, ev.Notes,
	).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return nil, wrapTxErr(err, "insert approval event of creative %d", cmd.CreativeID)
	}
	return ev, nil
}

// ListApprovalEvents returns the audit trail of a creative oldest first.
func (r *CreativeRepository) ListApprovalEvents(ctx context.Context, creativeID int64) ([]domain.ApprovalEvent, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, creative_id, from_status, to_status, reviewer, notes, created_at
FROM approval_events WHERE creative_id = $1 ORDER BY created_at, id`, creativeID)
	if err != nil {
		return nil, eris.Wrapf(err, "select approval events of creative %d", creativeID)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ApprovalEvent, error) {
		var (
			ev       domain.ApprovalEvent
			from, to string
		)
		err := row.Scan(&ev.ID, &ev.CreativeID, &from, &to, &ev.Reviewer, &ev.Notes, &ev.CreatedAt)
		ev.FromStatus = domain.ApprovalStatus(from)
		ev.ToStatus = domain.ApprovalStatus(to)
		return ev, err
	})
	return events, eris.Wrap(err, "scan approval events")
}
