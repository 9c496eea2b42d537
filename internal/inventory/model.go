package inventory

import "time"

// ExpiryWindowDays is how far ahead the expiry notifier looks.
const ExpiryWindowDays = 7

type InventoryItem struct {
	ID             string     `json:"id"`
	InventoryID    int        `json:"inventoryId"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	Supplier       string     `json:"supplier"`
	Quantity       int        `json:"quantity"`
	Price          float64    `json:"price"`
	ExpireDate     time.Time  `json:"expireDate"`
	LastNotifiedAt *time.Time `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type AddItemInput struct {
	InventoryID int     `json:"inventoryId"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Supplier    string  `json:"supplier"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ExpireDate  string  `json:"expireDate"`
}

type UpdateItemInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Supplier *string  `json:"supplier"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

// ExpiryWindow returns the date range the notifier scans, inclusive at both
// ends: items expiring between now and now plus seven days.
func ExpiryWindow(now time.Time) (time.Time, time.Time) {
	return now, now.AddDate(0, 0, ExpiryWindowDays)
}

// InExpiryWindow reports whether expire falls inside the notification window
// anchored at now.
func InExpiryWindow(expire, now time.Time) bool {
	from, to := ExpiryWindow(now)
	return !expire.Before(from) && !expire.After(to)
}
