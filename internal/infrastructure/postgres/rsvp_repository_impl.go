package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/domain/repository"
)

type RSVPRepository struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{pool: pool}
}

const rsvpColumns = `id, user_id, event_id, status, created_at, updated_at`

func scanRSVP(row pgx.Row) (*entity.RSVP, error) {
	r := &entity.RSVP{}
	if err := row.Scan(&r.ID, &r.UserID, &r.EventID, &r.Status,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (r *RSVPRepository) Create(ctx context.Context, rv *entity.RSVP) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rsvps (user_id, event_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, rv.UserID, rv.EventID, rv.Status)

	if err := row.Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		// the unique index on (user_id, event_id) settles concurrent creates
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *RSVPRepository) GetByID(ctx context.Context, id string) (*entity.RSVP, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+rsvpColumns+` FROM rsvps WHERE id = $1`, id)
	return scanRSVP(row)
}

func (r *RSVPRepository) GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.RSVP, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+rsvpColumns+` FROM rsvps WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	return scanRSVP(row)
}

func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID, status string) ([]*entity.RSVP, error) {
	q := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE event_id = $1`
	args := []any{eventID}
	if status != "" {
		q += ` AND status = $2`
		args = append(args, status)
	}
	q += ` ORDER BY created_at`
	return r.list(ctx, q, args...)
}

func (r *RSVPRepository) ListByUser(ctx context.Context, userID string) ([]*entity.RSVP, error) {
	return r.list(ctx, `SELECT `+rsvpColumns+` FROM rsvps WHERE user_id = $1 ORDER BY created_at`, userID)
}

func (r *RSVPRepository) list(ctx context.Context, q string, args ...any) ([]*entity.RSVP, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.RSVP
	for rows.Next() {
		rv, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *RSVPRepository) Update(ctx context.Context, rv *entity.RSVP) error {
	rv.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE rsvps SET status = $1, updated_at = $2 WHERE id = $3
	`, rv.Status, rv.UpdatedAt, rv.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.RSVPRepository = (*RSVPRepository)(nil)
