// Package memory provides in-memory repository implementations used as test
// doubles and for running the API without a database.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	seq   int
	users map[string]*entity.User // by id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]*entity.User{}}
}

func (r *UserRepository) nextID() string {
	r.seq++
	return "u-" + strconv.Itoa(r.seq)
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	now := time.Now()
	u.ID = r.nextID()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
