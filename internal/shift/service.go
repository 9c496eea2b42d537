package shift

import (
	"context"
	"database/sql"
	"errors"

	"hotelops-be/internal/apperr"

	"github.com/google/uuid"
)

var ErrShiftNotFound = apperr.NotFound("Shift not found")

type Service interface {
	Create(ctx context.Context, input CreateShiftInput) (*Shift, error)
	GetAll(ctx context.Context) ([]*Shift, error)
	GetByID(ctx context.Context, id string) (*Shift, error)
	Update(ctx context.Context, id string, input UpdateShiftInput) (*Shift, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateShiftInput) (*Shift, error) {
	if _, err := uuid.Parse(input.User); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, apperr.Validation("Start time and end time are required")
	}

	status := StatusScheduled
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperr.Validation("Invalid shift status")
		}
		status = *input.Status
	}

	sh := &Shift{
		UserID:    input.User,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    status,
	}
	if err := s.repo.Create(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Shift, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Shift, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid shift id")
	}

	sh, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	return sh, err
}

func (s *service) Update(ctx context.Context, id string, input UpdateShiftInput) (*Shift, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid shift id")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperr.Validation("Invalid shift status")
	}
	if input.User != nil {
		if _, err := uuid.Parse(*input.User); err != nil {
			return nil, apperr.Validation("Invalid user id")
		}
	}

	sh, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShiftNotFound
	}
	return sh, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid shift id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrShiftNotFound
	}
	return err
}
