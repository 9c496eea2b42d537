package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotelops-be/internal/apperr"

	"github.com/google/uuid"
)

var ErrEntryNotFound = apperr.NotFound("Working hours entry not found")

type Service interface {
	Create(ctx context.Context, input CreateWorkingHoursInput) (*WorkingHours, error)
	GetAll(ctx context.Context) ([]*WorkingHours, error)
	GetByUser(ctx context.Context, userID string) ([]*WorkingHours, error)
	GetByUserAndDate(ctx context.Context, userID, date string) ([]*WorkingHours, error)
	Update(ctx context.Context, id string, input UpdateWorkingHoursInput) (*WorkingHours, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create derives totalHours from the clock pair whenever clockOut is set.
func (s *service) Create(ctx context.Context, input CreateWorkingHoursInput) (*WorkingHours, error) {
	if _, err := uuid.Parse(input.User); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if input.Date.IsZero() {
		return nil, apperr.Validation("Date is required")
	}
	if input.ClockIn.IsZero() {
		return nil, apperr.Validation("Clock-in time is required")
	}
	if input.ClockOut != nil && input.ClockOut.Before(input.ClockIn) {
		return nil, apperr.Validation("Clock-out must be after clock-in")
	}

	wh := &WorkingHours{
		UserID:     input.User,
		Date:       input.Date,
		ClockIn:    input.ClockIn,
		ClockOut:   input.ClockOut,
		TotalHours: DeriveTotalHours(input.ClockIn, input.ClockOut),
	}
	if err := s.repo.Create(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

func (s *service) GetAll(ctx context.Context) ([]*WorkingHours, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]*WorkingHours, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) GetByUserAndDate(ctx context.Context, userID, date string) ([]*WorkingHours, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperr.Validation("Invalid date, expected YYYY-MM-DD")
	}
	return s.repo.GetByUserAndDate(ctx, userID, day)
}

// Update re-derives totalHours from the effective clock pair after the patch.
func (s *service) Update(ctx context.Context, id string, input UpdateWorkingHoursInput) (*WorkingHours, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid working hours id")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		existing.Date = *input.Date
	}
	if input.ClockIn != nil {
		existing.ClockIn = *input.ClockIn
	}
	if input.ClockOut != nil {
		existing.ClockOut = input.ClockOut
	}
	if existing.ClockOut != nil && existing.ClockOut.Before(existing.ClockIn) {
		return nil, apperr.Validation("Clock-out must be after clock-in")
	}
	existing.TotalHours = DeriveTotalHours(existing.ClockIn, existing.ClockOut)

	wh, err := s.repo.Update(ctx, id, existing)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	return wh, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid working hours id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEntryNotFound
	}
	return err
}
