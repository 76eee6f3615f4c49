package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/domain/authz"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	repo "github.com/oksasatya/event-planner-api/internal/domain/repository"
	"github.com/oksasatya/event-planner-api/pkg/helpers"
)

// UserService covers registration, credential verification, bearer-token
// resolution and profile access.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Register creates a new active user. A duplicate email yields ErrConflict.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:          in.Email,
		Name:           in.Name,
		HashedPassword: hash,
		IsActive:       true,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing
// a token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken mints a bearer token for u. Kept separate from Authenticate so
// callers decide when a successful credential check becomes a session.
func (s *UserService) IssueToken(u *entity.User, now time.Time) (string, time.Time, error) {
	tok, exp, err := s.JWT.Issue(u.Email, now)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
	}
	return tok, exp, err
}

// Resolve turns a bearer token into the current user. Any token failure,
// an unknown subject, or an inactive account yields ErrUnauthenticated;
// the internal cause is only logged.
func (s *UserService) Resolve(ctx context.Context, token string, now time.Time) (*entity.User, error) {
	subject, err := s.JWT.Verify(token, now)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Debug("token verification failed")
		}
		return nil, ErrUnauthenticated
	}
	u, err := s.Repo.GetByEmail(ctx, subject)
	if err != nil || u == nil {
		// a token for a deleted or unknown subject is never trusted
		return nil, ErrUnauthenticated
	}
	if !u.IsActive {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// GetUser returns the profile with the given id, visible only to its owner.
func (s *UserService) GetUser(ctx context.Context, current *entity.User, id string) (*entity.User, error) {
	if !authz.CanViewUser(current, id) {
		return nil, ErrForbidden
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

type UpdateProfileInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateProfile applies the set fields to the caller's own record. A new
// password is re-hashed before storage; an email change colliding with an
// existing account yields ErrConflict.
func (s *UserService) UpdateProfile(ctx context.Context, current *entity.User, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, current.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Password != "" {
		hash, hErr := helpers.HashPassword(in.Password)
		if hErr != nil {
			return nil, hErr
		}
		u.HashedPassword = hash
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}
