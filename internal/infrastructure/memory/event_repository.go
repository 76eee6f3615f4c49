package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/domain/repository"
)

type EventRepository struct {
	mu     sync.RWMutex
	seq    int
	events map[string]*entity.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: map[string]*entity.Event{}}
}

func (r *EventRepository) Create(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now()
	e.ID = "e-" + strconv.Itoa(r.seq)
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EventRepository) List(_ context.Context, f repository.EventFilter) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Event
	for _, e := range r.events {
		if f.VisibleTo != "" && !e.IsPublic && e.CreatedBy != f.VisibleTo {
			continue
		}
		if f.IsPublic != nil && e.IsPublic != *f.IsPublic {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })

	if f.Skip > 0 {
		if f.Skip >= len(out) {
			return nil, nil
		}
		out = out[f.Skip:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *EventRepository) Update(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[e.ID]; !ok {
		return repository.ErrNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *EventRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.events, id)
	return nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
