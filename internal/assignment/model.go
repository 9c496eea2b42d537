package assignment

import (
	"time"

	"hotelops-be/internal/order"
	"hotelops-be/internal/user"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Assignment links a staff user to an order. Both references are weak:
// deleting the user or order leaves the assignment behind with a null
// populated field.
type Assignment struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	OrderID      string    `json:"orderId"`
	Status       Status    `json:"status"`
	DateAssigned time.Time `json:"dateAssigned"`

	User  *user.Ref    `json:"user,omitempty"`
	Order *order.Order `json:"order,omitempty"`
}

type CreateAssignmentInput struct {
	User    string  `json:"user"`
	OrderID string  `json:"orderId"`
	Status  *Status `json:"status"`
}

type UpdateAssignmentInput struct {
	User    *string `json:"user"`
	OrderID *string `json:"orderId"`
	Status  *Status `json:"status"`
}
