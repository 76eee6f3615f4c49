package repository

import (
	"context"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
)

// RSVPRepository defines the interface for RSVP-related database operations.
// Create must return ErrConflict when an RSVP for the same (user, event) pair
// already exists; the unique index is the final arbiter for concurrent creates.
type RSVPRepository interface {
	Create(ctx context.Context, r *entity.RSVP) error
	GetByID(ctx context.Context, id string) (*entity.RSVP, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID string) (*entity.RSVP, error)
	ListByEvent(ctx context.Context, eventID, status string) ([]*entity.RSVP, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.RSVP, error)
	Update(ctx context.Context, r *entity.RSVP) error
}
