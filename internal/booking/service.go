package booking

import (
	"context"
	"database/sql"
	"errors"

	"hotelops-be/internal/apperr"

	"github.com/google/uuid"
)

var ErrBookingNotFound = apperr.NotFound("Booking not found")

type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (*Booking, error)
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateBookingInput) (*Booking, error) {
	if _, err := uuid.Parse(input.UserID); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if input.Name == "" {
		return nil, apperr.Validation("Name is required")
	}
	if input.Email == "" {
		return nil, apperr.Validation("Email is required")
	}
	if input.CheckinDate.IsZero() || input.CheckoutDate.IsZero() {
		return nil, apperr.Validation("Check-in and check-out dates are required")
	}
	if input.NumberOfGuests < 1 {
		return nil, apperr.Validation("Number of guests must be at least 1")
	}
	if input.NIC == "" {
		return nil, apperr.Validation("NIC is required")
	}

	status := StatusPending
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperr.Validation("Invalid booking status")
		}
		status = *input.Status
	}

	b := &Booking{
		UserID:         input.UserID,
		Name:           input.Name,
		Email:          input.Email,
		CheckinDate:    input.CheckinDate,
		CheckoutDate:   input.CheckoutDate,
		NumberOfGuests: input.NumberOfGuests,
		NIC:            input.NIC,
		Advance:        input.Advance,
		Status:         status,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid booking id")
	}

	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *service) Update(ctx context.Context, id string, input UpdateBookingInput) (*Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid booking id")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperr.Validation("Invalid booking status")
	}
	if input.NumberOfGuests != nil && *input.NumberOfGuests < 1 {
		return nil, apperr.Validation("Number of guests must be at least 1")
	}

	b, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid booking id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	return err
}
