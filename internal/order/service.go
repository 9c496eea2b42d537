package order

import (
	"context"
	"database/sql"
	"errors"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/food"
	"hotelops-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	foodRepo food.Repository
}

func NewService(repo Repository, foodRepo food.Repository) Service {
	return &service{repo: repo, foodRepo: foodRepo}
}

// Create prices the order against the current catalog and persists it.
// The computed total is frozen at creation; later catalog price changes
// never touch a stored order.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("user_id", input.UserID),
		zap.Int("item_count", len(input.Items)),
	)

	if _, err := uuid.Parse(input.UserID); err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if len(input.Items) == 0 {
		return nil, apperr.Validation("Order must contain at least one item")
	}

	totalPrice := 0.0
	items := make([]OrderItem, 0, len(input.Items))

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperr.Validation("Quantity must be at least 1")
		}
		if _, err := uuid.Parse(item.FoodItem); err != nil {
			return nil, apperr.Validation("Invalid food item id")
		}

		f, err := s.foodRepo.GetByID(ctx, item.FoodItem)
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("food item not found", zap.String("food_item_id", item.FoodItem))
			return nil, ErrFoodItemNotFound
		}
		if err != nil {
			return nil, err
		}

		totalPrice += f.Price * float64(item.Quantity)
		items = append(items, OrderItem{
			FoodItemID: item.FoodItem,
			Quantity:   item.Quantity,
		})
	}

	o := &Order{
		UserID:     input.UserID,
		Items:      items,
		TotalPrice: totalPrice,
		Status:     StatusPending,
	}

	if err := s.repo.CreateTx(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
	)

	return o, nil
}

func (s *service) GetAll(ctx context.Context) ([]*Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid order id")
	}

	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// Update applies a partial patch. Any status may follow any other; there is
// no transition state machine here.
func (s *service) Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid order id")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperr.Validation("Invalid order status")
	}
	if input.UserID != nil {
		if _, err := uuid.Parse(*input.UserID); err != nil {
			return nil, apperr.Validation("Invalid user id")
		}
	}

	o, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid order id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	return err
}
