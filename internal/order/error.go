package order

import "hotelops-be/internal/apperr"

var (
	ErrOrderNotFound    = apperr.NotFound("Order not found")
	ErrFoodItemNotFound = apperr.NotFound("Food item not found")
)
