package cart

import "hotelops-be/internal/food"

// Line is one entry in a cart.
type Line struct {
	FoodItemID string `json:"foodItem"`
	Quantity   int    `json:"quantity"`
}

// Cart is an immutable aggregate. Every operation returns a new value and
// leaves the receiver untouched, so there is no shared mutable cart state.
type Cart struct {
	UserID string `json:"userId"`
	Lines  []Line `json:"lines"`
}

func New(userID string) Cart {
	return Cart{UserID: userID}
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{UserID: c.UserID, Lines: lines}
}

// Add merges quantity into an existing line or appends a new one.
func (c Cart) Add(foodItemID string, quantity int) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].FoodItemID == foodItemID {
			next.Lines[i].Quantity += quantity
			return next
		}
	}
	next.Lines = append(next.Lines, Line{FoodItemID: foodItemID, Quantity: quantity})
	return next
}

// Remove drops the line entirely.
func (c Cart) Remove(foodItemID string) Cart {
	next := Cart{UserID: c.UserID}
	for _, l := range c.Lines {
		if l.FoodItemID != foodItemID {
			next.Lines = append(next.Lines, l)
		}
	}
	return next
}

func (c Cart) Increase(foodItemID string) Cart {
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].FoodItemID == foodItemID {
			next.Lines[i].Quantity++
		}
	}
	return next
}

// Decrease lowers the quantity by one; a line at quantity 1 is removed.
func (c Cart) Decrease(foodItemID string) Cart {
	for _, l := range c.Lines {
		if l.FoodItemID == foodItemID && l.Quantity <= 1 {
			return c.Remove(foodItemID)
		}
	}
	next := c.clone()
	for i := range next.Lines {
		if next.Lines[i].FoodItemID == foodItemID {
			next.Lines[i].Quantity--
		}
	}
	return next
}

func (c Cart) Clear() Cart {
	return Cart{UserID: c.UserID}
}

// Subtotal prices the cart against the given catalog snapshot. Lines whose
// food item is missing from the snapshot contribute nothing.
func (c Cart) Subtotal(prices map[string]float64) float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += prices[l.FoodItemID] * float64(l.Quantity)
	}
	return total
}

// View is the cart materialized for the client, with food items populated.
type View struct {
	UserID   string     `json:"userId"`
	Items    []ViewItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type ViewItem struct {
	FoodItem *food.FoodItem `json:"foodItem"`
	Quantity int            `json:"quantity"`
}
