package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, title, description, location, start_time, end_time,
	is_public, category, max_attendees, created_by, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	e := &entity.Event{}
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartTime,
		&e.EndTime, &e.IsPublic, &e.Category, &e.MaxAttendees, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, location, start_time, end_time,
			is_public, category, max_attendees, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, e.Title, e.Description, e.Location, e.StartTime, e.EndTime,
		e.IsPublic, e.Category, e.MaxAttendees, e.CreatedBy)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

func (r *EventRepository) List(ctx context.Context, f repository.EventFilter) ([]*entity.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events`
	args := []any{}
	where := ""

	addCond := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	if f.VisibleTo != "" {
		args = append(args, f.VisibleTo)
		addCond("(is_public = true OR created_by = $" + strconv.Itoa(len(args)) + ")")
	}
	if f.IsPublic != nil {
		args = append(args, *f.IsPublic)
		addCond("is_public = $" + strconv.Itoa(len(args)))
	}

	q += where + " ORDER BY start_time"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += " LIMIT $" + strconv.Itoa(len(args))
	}
	if f.Skip > 0 {
		args = append(args, f.Skip)
		q += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *entity.Event) error {
	e.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, location = $3, start_time = $4,
			end_time = $5, is_public = $6, category = $7, max_attendees = $8,
			updated_at = $9
		WHERE id = $10
	`, e.Title, e.Description, e.Location, e.StartTime, e.EndTime,
		e.IsPublic, e.Category, e.MaxAttendees, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
