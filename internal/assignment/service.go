package assignment

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/logger"
	"hotelops-be/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrAssignmentNotFound = apperr.NotFound("Order assignment not found")

type Service interface {
	Create(ctx context.Context, input CreateAssignmentInput) (*Assignment, error)
	GetAll(ctx context.Context) ([]*Assignment, error)
	GetByID(ctx context.Context, id string) (*Assignment, error)
	Update(ctx context.Context, id string, input UpdateAssignmentInput) (*Assignment, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	orderRepo order.Repository
}

func NewService(repo Repository, orderRepo order.Repository) Service {
	return &service{repo: repo, orderRepo: orderRepo}
}

// Create checks that both references are well-formed ids but does not verify
// they exist; a dangling reference only surfaces as a null population later.
func (s *service) Create(ctx context.Context, input CreateAssignmentInput) (*Assignment, error) {
	log := logger.FromCtx(ctx)

	if _, err := uuid.Parse(input.User); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if _, err := uuid.Parse(input.OrderID); err != nil {
		return nil, apperr.Validation("Invalid order id")
	}

	status := StatusPending
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperr.Validation("Invalid assignment status")
		}
		status = *input.Status
	}

	a := &Assignment{
		UserID:       input.User,
		OrderID:      input.OrderID,
		Status:       status,
		DateAssigned: time.Now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.Error("failed to create order assignment", zap.Error(err))
		return nil, err
	}

	log.Info("order assignment created",
		zap.String("assignment_id", a.ID),
		zap.String("order_id", a.OrderID),
	)

	return a, nil
}

// GetAll returns assignments with user, order, and the order's food items
// populated, mirroring the admin dashboard's three-level view.
func (s *service) GetAll(ctx context.Context) ([]*Assignment, error) {
	assignments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range assignments {
		o, err := s.orderRepo.GetByID(ctx, a.OrderID)
		if errors.Is(err, sql.ErrNoRows) {
			continue // dangling order reference, leave Order nil
		}
		if err != nil {
			return nil, err
		}
		a.Order = o
	}

	return assignments, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Assignment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid assignment id")
	}

	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	return a, err
}

// Update applies any subset of fields. Status moves freely in both
// directions; the underlying order's status is never touched.
func (s *service) Update(ctx context.Context, id string, input UpdateAssignmentInput) (*Assignment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid assignment id")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperr.Validation("Invalid assignment status")
	}
	if input.User != nil {
		if _, err := uuid.Parse(*input.User); err != nil {
			return nil, apperr.Validation("Invalid user id")
		}
	}
	if input.OrderID != nil {
		if _, err := uuid.Parse(*input.OrderID); err != nil {
			return nil, apperr.Validation("Invalid order id")
		}
	}

	a, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	return a, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid assignment id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAssignmentNotFound
	}
	return err
}
