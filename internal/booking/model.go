package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	NIC            string    `json:"nic"`
	Advance        float64   `json:"advance"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateBookingInput struct {
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	NIC            string    `json:"nic"`
	Advance        float64   `json:"advance"`
	Status         *Status   `json:"status"`
}

type UpdateBookingInput struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	CheckinDate    *time.Time `json:"checkinDate"`
	CheckoutDate   *time.Time `json:"checkoutDate"`
	NumberOfGuests *int       `json:"numberOfGuests"`
	NIC            *string    `json:"nic"`
	Advance        *float64   `json:"advance"`
	Status         *Status    `json:"status"`
}
