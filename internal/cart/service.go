package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/food"
)

var ErrFoodItemNotFound = apperr.NotFound("Food item not found")

type Service interface {
	Get(ctx context.Context, userID string) (*View, error)
	AddItem(ctx context.Context, userID, foodItemID string, quantity int) (*View, error)
	RemoveItem(ctx context.Context, userID, foodItemID string) (*View, error)
	Increase(ctx context.Context, userID, foodItemID string) (*View, error)
	Decrease(ctx context.Context, userID, foodItemID string) (*View, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	foodRepo food.Repository
}

func NewService(repo Repository, foodRepo food.Repository) Service {
	return &service{repo: repo, foodRepo: foodRepo}
}

func (s *service) Get(ctx context.Context, userID string) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.materialize(ctx, c)
}

func (s *service) AddItem(ctx context.Context, userID, foodItemID string, quantity int) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	if _, err := uuid.Parse(foodItemID); err != nil {
		return nil, apperr.Validation("Invalid food item ID")
	}
	if quantity < 1 {
		return nil, apperr.Validation("Quantity must be at least 1")
	}
	if _, err := s.foodRepo.GetByID(ctx, foodItemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}
	return s.apply(ctx, userID, func(c Cart) Cart { return c.Add(foodItemID, quantity) })
}

func (s *service) RemoveItem(ctx context.Context, userID, foodItemID string) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	return s.apply(ctx, userID, func(c Cart) Cart { return c.Remove(foodItemID) })
}

func (s *service) Increase(ctx context.Context, userID, foodItemID string) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	return s.apply(ctx, userID, func(c Cart) Cart { return c.Increase(foodItemID) })
}

func (s *service) Decrease(ctx context.Context, userID, foodItemID string) (*View, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("Invalid user ID")
	}
	return s.apply(ctx, userID, func(c Cart) Cart { return c.Decrease(foodItemID) })
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apperr.Validation("Invalid user ID")
	}
	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Save(ctx, c.Clear()); err != nil {
		return err
	}
	return nil
}

func (s *service) apply(ctx context.Context, userID string, op func(Cart) Cart) (*View, error) {
	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	next := op(c)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	return s.materialize(ctx, next)
}

// materialize resolves each line against the catalog. Lines whose food item
// has been deleted are shown with a nil foodItem and priced at zero.
func (s *service) materialize(ctx context.Context, c Cart) (*View, error) {
	v := &View{UserID: c.UserID, Items: []ViewItem{}}
	prices := make(map[string]float64, len(c.Lines))
	for _, l := range c.Lines {
		item := ViewItem{Quantity: l.Quantity}
		f, err := s.foodRepo.GetByID(ctx, l.FoodItemID)
		switch {
		case err == nil:
			item.FoodItem = f
			prices[l.FoodItemID] = f.Price
		case errors.Is(err, sql.ErrNoRows):
			// dangling reference, leave unpopulated
		default:
			return nil, err
		}
		v.Items = append(v.Items, item)
	}
	v.Subtotal = c.Subtotal(prices)
	return v, nil
}
