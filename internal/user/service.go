package user

import (
	"context"
	"database/sql"
	"errors"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*User, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	log := logger.FromCtx(ctx)

	if input.Name == "" {
		return nil, apperr.Validation("Name is required")
	}
	if input.Email == "" {
		return nil, apperr.Validation("Email is required")
	}
	if input.Password == "" {
		return nil, apperr.Validation("Password is required")
	}
	if input.Role == "" {
		input.Role = RoleUser
	}
	if !input.Role.Valid() {
		return nil, apperr.Validation("Invalid role")
	}
	if input.HourlyRate < 0 {
		return nil, apperr.Validation("Hourly rate must be a non-negative number")
	}

	u, err := s.repo.Create(ctx, input)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.String("user_id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *service) GetAll(ctx context.Context) ([]*User, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}

	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *service) Update(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, apperr.Validation("Invalid role")
	}
	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return nil, apperr.Validation("Hourly rate must be a non-negative number")
	}

	u, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid user id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	return err
}

// Login compares the submitted password byte-for-byte with the stored one.
// Passwords are not hashed anywhere in this system.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login: email not found", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if password != u.Password {
		log.Warn("login: password mismatch", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("login: failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	return &LoginResult{
		User: LoginUser{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
		Token: token,
	}, nil
}
