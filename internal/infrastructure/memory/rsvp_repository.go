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

type RSVPRepository struct {
	mu    sync.RWMutex
	seq   int
	rsvps map[string]*entity.RSVP
}

func NewRSVPRepository() *RSVPRepository {
	return &RSVPRepository{rsvps: map[string]*entity.RSVP{}}
}

func (r *RSVPRepository) Create(_ context.Context, rv *entity.RSVP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// mirrors the unique index on (user_id, event_id)
	for _, existing := range r.rsvps {
		if existing.UserID == rv.UserID && existing.EventID == rv.EventID {
			return repository.ErrConflict
		}
	}
	r.seq++
	now := time.Now()
	rv.ID = "r-" + strconv.Itoa(r.seq)
	rv.CreatedAt = now
	rv.UpdatedAt = now
	cp := *rv
	r.rsvps[rv.ID] = &cp
	return nil
}

func (r *RSVPRepository) GetByID(_ context.Context, id string) (*entity.RSVP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rv, ok := r.rsvps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *RSVPRepository) GetByUserAndEvent(_ context.Context, userID, eventID string) (*entity.RSVP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rv := range r.rsvps {
		if rv.UserID == userID && rv.EventID == eventID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *RSVPRepository) ListByEvent(_ context.Context, eventID, status string) ([]*entity.RSVP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.RSVP
	for _, rv := range r.rsvps {
		if rv.EventID != eventID {
			continue
		}
		if status != "" && rv.Status != status {
			continue
		}
		cp := *rv
		out = append(out, &cp)
	}
	sortByCreation(out)
	return out, nil
}

func (r *RSVPRepository) ListByUser(_ context.Context, userID string) ([]*entity.RSVP, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.RSVP
	for _, rv := range r.rsvps {
		if rv.UserID == userID {
			cp := *rv
			out = append(out, &cp)
		}
	}
	sortByCreation(out)
	return out, nil
}

func (r *RSVPRepository) Update(_ context.Context, rv *entity.RSVP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rsvps[rv.ID]; !ok {
		return repository.ErrNotFound
	}
	rv.UpdatedAt = time.Now()
	cp := *rv
	r.rsvps[rv.ID] = &cp
	return nil
}

func sortByCreation(rs []*entity.RSVP) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.Before(rs[j].CreatedAt)
	})
}

var _ repository.RSVPRepository = (*RSVPRepository)(nil)
