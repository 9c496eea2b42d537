package food

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, input CreateFoodItemInput) (*FoodItem, error)
	GetAll(ctx context.Context) ([]*FoodItem, error)
	GetByID(ctx context.Context, id string) (*FoodItem, error)
	Update(ctx context.Context, id string, input UpdateFoodItemInput) (*FoodItem, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const foodColumns = "id, name, price, description, image_url, created_at, updated_at"

func scanFoodItem(row interface{ Scan(...interface{}) error }) (*FoodItem, error) {
	var f FoodItem
	err := row.Scan(&f.ID, &f.Name, &f.Price, &f.Description, &f.ImageURL, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) Create(ctx context.Context, input CreateFoodItemInput) (*FoodItem, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO food_items (name, price, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+foodColumns,
		input.Name, input.Price, input.Description, input.ImageURL,
	)
	return scanFoodItem(row)
}

func (r *repository) GetAll(ctx context.Context) ([]*FoodItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+foodColumns+" FROM food_items ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*FoodItem
	for rows.Next() {
		f, err := scanFoodItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*FoodItem, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+foodColumns+" FROM food_items WHERE id = $1", id,
	)
	return scanFoodItem(row)
}

func (r *repository) Update(ctx context.Context, id string, input UpdateFoodItemInput) (*FoodItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE food_items SET
			name        = COALESCE($2, name),
			price       = COALESCE($3, price),
			description = COALESCE($4, description),
			image_url   = COALESCE($5, image_url),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+foodColumns,
		id, input.Name, input.Price, input.Description, input.ImageURL,
	)
	return scanFoodItem(row)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM food_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
