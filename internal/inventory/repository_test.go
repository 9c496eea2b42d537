package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		item := &InventoryItem{
			InventoryID: 1234,
			Name:        "Basmati Rice",
			Category:    "Dry Goods",
			Supplier:    "Keells",
			Quantity:    40,
			Price:       1250,
			ExpireDate:  now.AddDate(0, 2, 0),
		}

		mock.ExpectQuery("INSERT INTO inventory_items").
			WithArgs(item.InventoryID, item.Name, item.Category, item.Supplier,
				item.Quantity, item.Price, item.ExpireDate).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow("item-1", now, now))

		err := repo.Create(context.Background(), item)
		assert.NoError(t, err)
		assert.Equal(t, "item-1", item.ID)
	})

	t.Run("DuplicateInventoryID", func(t *testing.T) {
		item := &InventoryItem{InventoryID: 1234, ExpireDate: now}

		mock.ExpectQuery("INSERT INTO inventory_items").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "inventory_items_inventory_id_key"`))

		err := repo.Create(context.Background(), item)
		assert.Error(t, err)
	})
}

func TestRepository_ExpiringBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	from, to := ExpiryWindow(now)
	notifiedBefore := now.Add(-24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "inventory_id", "name", "category", "supplier",
			"quantity", "price", "expire_date", "last_notified_at", "created_at", "updated_at",
		}).
			AddRow("item-1", 1234, "Milk", "Dairy", "Keells", 12, 350.0, now.AddDate(0, 0, 2), nil, now, now).
			AddRow("item-2", 5678, "Yogurt", "Dairy", "Keells", 30, 85.0, now.AddDate(0, 0, 6), now.Add(-48*time.Hour), now, now)

		mock.ExpectQuery("FROM inventory_items").
			WithArgs(from, to, notifiedBefore).
			WillReturnRows(rows)

		items, err := repo.ExpiringBetween(context.Background(), from, to, notifiedBefore)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Nil(t, items[0].LastNotifiedAt)
		require.NotNil(t, items[1].LastNotifiedAt)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("FROM inventory_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.ExpiringBetween(context.Background(), from, to, notifiedBefore)
		assert.Error(t, err)
	})
}

func TestRepository_MarkNotified(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE inventory_items SET last_notified_at").
		WithArgs(at, pq.Array([]string{"item-1", "item-2"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.MarkNotified(context.Background(), []string{"item-1", "item-2"}, at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
