package inventory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

var ErrItemNotFound = apperr.NotFound("Inventory item not found")

type Service interface {
	AddItem(ctx context.Context, input AddItemInput) (*InventoryItem, error)
	GetAll(ctx context.Context) ([]*InventoryItem, error)
	GetByID(ctx context.Context, id string) (*InventoryItem, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddItem runs the intake checks in order and stops at the first violation.
// On success it always inserts a fresh row; a repeated inventoryId is
// rejected by the unique index, not merged.
func (s *service) AddItem(ctx context.Context, input AddItemInput) (*InventoryItem, error) {
	log := logger.FromCtx(ctx)

	if input.InventoryID == 0 {
		return nil, apperr.Validation("Missing inventory Id")
	}
	if input.InventoryID < 1111 || input.InventoryID > 9999 {
		return nil, apperr.Validation("Invalid Inventory ID format")
	}
	if input.Name == "" {
		return nil, apperr.Validation("Invalid or missing item name")
	}
	if input.Category == "" {
		return nil, apperr.Validation("Invalid or missing category")
	}
	if input.Supplier == "" {
		return nil, apperr.Validation("Invalid or missing supplier")
	}
	if input.Quantity < 0 {
		return nil, apperr.Validation("Quantity must be a non-negative number")
	}
	if input.Price < 0 {
		return nil, apperr.Validation("Price must be a non-negative number")
	}

	expire, err := parseExpireDate(input.ExpireDate)
	if err != nil || !expire.After(time.Now()) {
		return nil, apperr.Validation("Expiration date must be a future date larger than today")
	}

	item := &InventoryItem{
		InventoryID: input.InventoryID,
		Name:        input.Name,
		Category:    input.Category,
		Supplier:    input.Supplier,
		Quantity:    input.Quantity,
		Price:       input.Price,
		ExpireDate:  expire,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, apperr.Validation("Inventory ID already exists")
		}
		log.Error("failed to add inventory item",
			zap.Int("inventory_id", input.InventoryID),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("inventory item added",
		zap.Int("inventory_id", item.InventoryID),
		zap.String("name", item.Name),
	)

	return item, nil
}

func parseExpireDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (s *service) GetAll(ctx context.Context) ([]*InventoryItem, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*InventoryItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid inventory item id")
	}

	it, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return it, err
}

func (s *service) Update(ctx context.Context, id string, input UpdateItemInput) (*InventoryItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid inventory item id")
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, apperr.Validation("Quantity must be a non-negative number")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperr.Validation("Price must be a non-negative number")
	}

	it, err := s.repo.Update(ctx, id, input)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return it, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.Validation("Invalid inventory item id")
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	return err
}
