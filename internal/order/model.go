package order

import (
	"time"

	"hotelops-be/internal/food"
	"hotelops-be/internal/user"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Items      []OrderItem `json:"items"`
	TotalPrice float64     `json:"totalPrice"`
	Status     Status      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`

	// User is populated on reads; nil when the referenced user is gone.
	User *user.Ref `json:"user,omitempty"`
}

type OrderItem struct {
	ID         int64  `json:"id"`
	OrderID    string `json:"orderId"`
	FoodItemID string `json:"foodItem"`
	Quantity   int    `json:"quantity"`

	// FoodItem is populated on reads; nil when the catalog entry is gone.
	FoodItem *food.FoodItem `json:"foodItemDetail,omitempty"`
}

type LineItemInput struct {
	FoodItem string `json:"foodItem"`
	Quantity int    `json:"quantity"`
}

type CreateOrderInput struct {
	UserID string          `json:"user"`
	Items  []LineItemInput `json:"items"`
}

// UpdateOrderInput deliberately exposes only the user reference and
// status. Line items cannot be patched after creation because totalPrice
// is computed once from the catalog and never recomputed.
type UpdateOrderInput struct {
	UserID *string `json:"user"`
	Status *Status `json:"status"`
}
