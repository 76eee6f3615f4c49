package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/domain/authz"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	repo "github.com/oksasatya/event-planner-api/internal/domain/repository"
)

// RSVPService owns RSVP creation/updates and their ownership checks. Listing
// an event's RSVPs goes through the event's own visibility rule.
type RSVPService struct {
	Repo   repo.RSVPRepository
	Events repo.EventRepository
	Logger *logrus.Logger
}

func NewRSVPService(r repo.RSVPRepository, events repo.EventRepository, logger *logrus.Logger) *RSVPService {
	return &RSVPService{Repo: r, Events: events, Logger: logger}
}

// Create records the caller's RSVP for an event. A second RSVP for the same
// (user, event) pair is ErrConflict; the pre-check handles the common case and
// the store's unique index settles concurrent creates.
func (s *RSVPService) Create(ctx context.Context, current *entity.User, eventID, status string) (*entity.RSVP, error) {
	if status == "" {
		status = entity.RSVPMaybe
	}
	if !entity.ValidRSVPStatus(status) {
		return nil, ErrInvalidStatus
	}
	if existing, err := s.Repo.GetByUserAndEvent(ctx, current.ID, eventID); err == nil && existing != nil {
		return nil, ErrConflict
	}
	r := &entity.RSVP{
		UserID:  current.ID,
		EventID: eventID,
		Status:  status,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return r, nil
}

// Update changes the status of an existing RSVP; only its holder may.
func (s *RSVPService) Update(ctx context.Context, current *entity.User, id, status string) (*entity.RSVP, error) {
	if !entity.ValidRSVPStatus(status) {
		return nil, ErrInvalidStatus
	}
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !authz.CanMutateRSVP(current, r) {
		return nil, ErrForbidden
	}
	r.Status = status
	if err := s.Repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListByEvent returns an event's RSVPs, optionally filtered by status.
// The event must exist (ErrNotFound) and be visible to the caller
// (ErrForbidden), in that order.
func (s *RSVPService) ListByEvent(ctx context.Context, current *entity.User, eventID, status string) ([]*entity.RSVP, error) {
	e, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !authz.CanViewEventRSVPs(current, e) {
		return nil, ErrForbidden
	}
	return s.Repo.ListByEvent(ctx, eventID, status)
}

// ListMine returns all of the caller's RSVPs.
func (s *RSVPService) ListMine(ctx context.Context, current *entity.User) ([]*entity.RSVP, error) {
	return s.Repo.ListByUser(ctx, current.ID)
}
