package food

import (
	"context"
	"database/sql"
	"errors"

	"hotelops-be/internal/apperr"

	"github.com/google/uuid"
)

var ErrFoodItemNotFound = apperr.NotFound("Food item not found")

type Service interface {
	Create(ctx context.Context, input CreateFoodItemInput) (*FoodItem, error)
	GetAll(ctx context.Context) ([]*FoodItem, error)
	GetByID(ctx context.Context, id string) (*FoodItem, error)
	Update(ctx context.Context, id string, input UpdateFoodItemInput) (*FoodItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input CreateFoodItemInput) (*FoodItem, error) {
	if input.Name == "" {
		return nil, apperr.Validation("Name is required")
	}
	if input.Price < 0 {
		return nil, apperr.Validation("Price must be a non-negative number")
	}
	return s.repo.Create(ctx, input)
}

func (s *service) GetAll(ctx context.Context) ([]*FoodItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid food item id")
	}

	f, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFoodItemNotFound
	}
	return f, err
}

func (s *service) Update(ctx context.Context, id string, input UpdateFoodItemInput) (*FoodItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid food item id")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperr.Validation("Price must be a non-negative number")
	}

	f, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFoodItemNotFound
	}
	return f, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid food item id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFoodItemNotFound
	}
	return err
}
