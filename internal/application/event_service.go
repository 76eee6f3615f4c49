package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/domain/authz"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	repo "github.com/oksasatya/event-planner-api/internal/domain/repository"
)

// EventService owns event CRUD plus the visibility/ownership checks around it.
type EventService struct {
	Repo   repo.EventRepository
	Logger *logrus.Logger
}

func NewEventService(r repo.EventRepository, logger *logrus.Logger) *EventService {
	return &EventService{Repo: r, Logger: logger}
}

type CreateEventInput struct {
	Title        string
	Description  string
	Location     string
	StartTime    time.Time
	EndTime      time.Time
	IsPublic     bool
	Category     string
	MaxAttendees int
}

func (s *EventService) Create(ctx context.Context, current *entity.User, in CreateEventInput) (*entity.Event, error) {
	e := &entity.Event{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		IsPublic:     in.IsPublic,
		Category:     in.Category,
		MaxAttendees: in.MaxAttendees,
		CreatedBy:    current.ID,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

type ListEventsInput struct {
	IsPublic *bool
	Skip     int
	Limit    int
}

// List returns the events visible to the caller: public ones plus their own.
func (s *EventService) List(ctx context.Context, current *entity.User, in ListEventsInput) ([]*entity.Event, error) {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 100
	}
	if in.Skip < 0 {
		in.Skip = 0
	}
	return s.Repo.List(ctx, repo.EventFilter{
		IsPublic:  in.IsPublic,
		VisibleTo: current.ID,
		Skip:      in.Skip,
		Limit:     in.Limit,
	})
}

// Get fetches an event by id. Existence is checked first: a missing event is
// ErrNotFound, a private event hidden from the caller is ErrForbidden. The
// distinction deliberately reveals that a hidden event exists.
func (s *EventService) Get(ctx context.Context, current *entity.User, id string) (*entity.Event, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !authz.CanViewEvent(current, e) {
		return nil, ErrForbidden
	}
	return e, nil
}

type UpdateEventInput struct {
	Title        *string
	Description  *string
	Location     *string
	StartTime    *time.Time
	EndTime      *time.Time
	IsPublic     *bool
	Category     *string
	MaxAttendees *int
}

func (s *EventService) Update(ctx context.Context, current *entity.User, id string, in UpdateEventInput) (*entity.Event, error) {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !authz.CanMutateEvent(current, e) {
		return nil, ErrForbidden
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.StartTime != nil {
		e.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		e.EndTime = *in.EndTime
	}
	if in.IsPublic != nil {
		e.IsPublic = *in.IsPublic
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.MaxAttendees != nil {
		e.MaxAttendees = *in.MaxAttendees
	}
	if err := s.Repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, current *entity.User, id string) error {
	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !authz.CanMutateEvent(current, e) {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, e.ID)
}
