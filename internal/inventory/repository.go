package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, item *InventoryItem) error
	GetAll(ctx context.Context) ([]*InventoryItem, error)
	GetByID(ctx context.Context, id string) (*InventoryItem, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*InventoryItem, error)
	Delete(ctx context.Context, id string) error

	// ExpiringBetween lists items whose expiry falls in [from, to] and that
	// have not been notified since notifiedBefore, ascending by expiry.
	ExpiringBetween(ctx context.Context, from, to, notifiedBefore time.Time) ([]*InventoryItem, error)
	MarkNotified(ctx context.Context, ids []string, at time.Time) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const itemColumns = "id, inventory_id, name, category, supplier, quantity, price, expire_date, last_notified_at, created_at, updated_at"

func scanItem(row interface{ Scan(...interface{}) error }) (*InventoryItem, error) {
	var (
		it       InventoryItem
		notified sql.NullTime
	)
	err := row.Scan(&it.ID, &it.InventoryID, &it.Name, &it.Category, &it.Supplier,
		&it.Quantity, &it.Price, &it.ExpireDate, &notified, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if notified.Valid {
		it.LastNotifiedAt = &notified.Time
	}
	return &it, nil
}

func (r *repository) Create(ctx context.Context, item *InventoryItem) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO inventory_items (inventory_id, name, category, supplier, quantity, price, expire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		item.InventoryID, item.Name, item.Category, item.Supplier,
		item.Quantity, item.Price, item.ExpireDate,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *repository) GetAll(ctx context.Context) ([]*InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM inventory_items ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*InventoryItem, error) {
	return scanItem(r.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM inventory_items WHERE id = $1", id,
	))
}

func (r *repository) Update(ctx context.Context, id string, input UpdateItemInput) (*InventoryItem, error) {
	return scanItem(r.db.QueryRowContext(ctx, `
		UPDATE inventory_items SET
			name       = COALESCE($2, name),
			category   = COALESCE($3, category),
			supplier   = COALESCE($4, supplier),
			quantity   = COALESCE($5, quantity),
			price      = COALESCE($6, price),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+itemColumns,
		id, input.Name, input.Category, input.Supplier, input.Quantity, input.Price,
	))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM inventory_items WHERE id = $1", id)
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

func (r *repository) ExpiringBetween(ctx context.Context, from, to, notifiedBefore time.Time) ([]*InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE expire_date BETWEEN $1 AND $2
		  AND (last_notified_at IS NULL OR last_notified_at < $3)
		ORDER BY expire_date ASC`,
		from, to, notifiedBefore,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) MarkNotified(ctx context.Context, ids []string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE inventory_items SET last_notified_at = $1 WHERE id = ANY($2)",
		at, pq.Array(ids),
	)
	return err
}
