package repository

import (
	"context"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
)

// EventFilter narrows event listings. VisibleTo limits results to events that
// are public or owned by the given user id; IsPublic filters on the flag when
// non-nil.
type EventFilter struct {
	IsPublic  *bool
	VisibleTo string
	Skip      int
	Limit     int
}

// EventRepository defines the interface for event-related database operations.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	List(ctx context.Context, f EventFilter) ([]*entity.Event, error)
	Update(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id string) error
}
