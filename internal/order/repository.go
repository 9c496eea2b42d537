package order

import (
	"context"
	"database/sql"

	"hotelops-be/internal/food"
	"hotelops-be/internal/logger"
	"hotelops-be/internal/user"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateTx(ctx context.Context, o *Order) error
	GetAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateTx persists the order and its line items in one transaction, so a
// failed item insert leaves no partial order behind.
func (r *repository) CreateTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total_price, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		o.UserID, o.TotalPrice, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Error(err))
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, food_item_id, quantity)
			VALUES ($1, $2, $3)
			RETURNING id`,
			o.ID, item.FoodItemID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.String("order_id", o.ID),
				zap.String("food_item_id", item.FoodItemID),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

const orderSelect = `
	SELECT o.id, o.user_id, o.total_price, o.status, o.created_at, o.updated_at,
	       u.id, u.name, u.email, u.role
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id`

func scanOrder(row interface{ Scan(...interface{}) error }) (*Order, error) {
	var (
		o     Order
		uID   sql.NullString
		uName sql.NullString
		uMail sql.NullString
		uRole sql.NullString
	)
	err := row.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&uID, &uName, &uMail, &uRole)
	if err != nil {
		return nil, err
	}
	if uID.Valid {
		o.User = &user.Ref{ID: uID.String, Name: uName.String, Email: uMail.String, Role: user.Role(uRole.String)}
	}
	return &o, nil
}

func (r *repository) GetAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, orderSelect+" ORDER BY o.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	ids := make([]string, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = itemsByOrder[o.ID]
	}
	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, orderSelect+" WHERE o.id = $1", id))
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.fetchItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]
	return o, nil
}

// fetchItems loads line items for a batch of orders with their food items
// populated. A deleted food item leaves FoodItem nil.
func (r *repository) fetchItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.food_item_id, oi.quantity,
		       f.id, f.name, f.price, f.description, f.image_url, f.created_at, f.updated_at
		FROM order_items oi
		LEFT JOIN food_items f ON f.id = oi.food_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`,
		pq.Array(orderIDs),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]OrderItem)
	for rows.Next() {
		var (
			item  OrderItem
			fID   sql.NullString
			fName sql.NullString
			fPrc  sql.NullFloat64
			fDesc sql.NullString
			fImg  sql.NullString
			fCre  sql.NullTime
			fUpd  sql.NullTime
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID, &item.Quantity,
			&fID, &fName, &fPrc, &fDesc, &fImg, &fCre, &fUpd)
		if err != nil {
			return nil, err
		}
		if fID.Valid {
			item.FoodItem = &food.FoodItem{
				ID:          fID.String,
				Name:        fName.String,
				Price:       fPrc.Float64,
				Description: fDesc.String,
				ImageURL:    fImg.String,
				CreatedAt:   fCre.Time,
				UpdatedAt:   fUpd.Time,
			}
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	return result, rows.Err()
}

func (r *repository) Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error) {
	var exists string
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders SET
			user_id    = COALESCE($2, user_id),
			status     = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id`,
		id, input.UserID, input.Status,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
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
