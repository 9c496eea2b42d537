package cart

import (
	"context"
	"database/sql"
)

type Repository interface {
	Load(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, c Cart) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Load(ctx context.Context, userID string) (Cart, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT food_item_id, quantity
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at ASC`, userID)
	if err != nil {
		return Cart{}, err
	}
	defer rows.Close()

	c := New(userID)
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.FoodItemID, &l.Quantity); err != nil {
			return Cart{}, err
		}
		c.Lines = append(c.Lines, l)
	}
	return c, rows.Err()
}

// Save replaces the stored cart with the given value in one transaction.
func (r *repository) Save(ctx context.Context, c Cart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, c.UserID); err != nil {
		return err
	}
	for _, l := range c.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (user_id, food_item_id, quantity)
			VALUES ($1, $2, $3)`, c.UserID, l.FoodItemID, l.Quantity)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
