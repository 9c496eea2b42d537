package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelops-be/internal/apperr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, item *InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*InventoryItem), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InventoryItem), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateItemInput) (*InventoryItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*InventoryItem), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ExpiringBetween(ctx context.Context, from, to, notifiedBefore time.Time) ([]*InventoryItem, error) {
	args := m.Called(ctx, from, to, notifiedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*InventoryItem), args.Error(1)
}

func (m *MockRepository) MarkNotified(ctx context.Context, ids []string, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

func validInput(t *testing.T) AddItemInput {
	t.Helper()
	return AddItemInput{
		InventoryID: 1234,
		Name:        "Basmati Rice",
		Category:    "Dry Goods",
		Supplier:    "Keells",
		Quantity:    40,
		Price:       1250,
		ExpireDate:  time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
	}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)

		it, err := svc.AddItem(ctx, validInput(t))
		assert.NoError(t, err)
		assert.Equal(t, 1234, it.InventoryID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingInventoryID", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		input := validInput(t)
		input.InventoryID = 0
		_, err := svc.AddItem(ctx, input)
		assert.EqualError(t, err, "Missing inventory Id")
	})

	t.Run("InventoryIDOutOfRange", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		for _, id := range []int{1000, 1110, 10000, 99999} {
			input := validInput(t)
			input.InventoryID = id
			_, err := svc.AddItem(ctx, input)
			assert.EqualError(t, err, "Invalid Inventory ID format")
		}
	})

	t.Run("InventoryIDBoundsAccepted", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		for _, id := range []int{1111, 9999} {
			input := validInput(t)
			input.InventoryID = id
			_, err := svc.AddItem(ctx, input)
			assert.NoError(t, err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		cases := []struct {
			mutate  func(*AddItemInput)
			message string
		}{
			{func(in *AddItemInput) { in.Name = "" }, "Invalid or missing item name"},
			{func(in *AddItemInput) { in.Category = "" }, "Invalid or missing category"},
			{func(in *AddItemInput) { in.Supplier = "" }, "Invalid or missing supplier"},
			{func(in *AddItemInput) { in.Quantity = -1 }, "Quantity must be a non-negative number"},
			{func(in *AddItemInput) { in.Price = -1 }, "Price must be a non-negative number"},
		}
		for _, tc := range cases {
			input := validInput(t)
			tc.mutate(&input)
			_, err := svc.AddItem(ctx, input)
			assert.EqualError(t, err, tc.message)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		}
	})

	t.Run("DuplicateInventoryID", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).
			Return(&pq.Error{Code: "23505", Constraint: "inventory_items_inventory_id_key"})

		_, err := svc.AddItem(ctx, validInput(t))
		assert.EqualError(t, err, "Inventory ID already exists")
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("ExpireDateNotFuture", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		for _, raw := range []string{
			time.Now().Format("2006-01-02"),
			time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
			"not-a-date",
			"",
		} {
			input := validInput(t)
			input.ExpireDate = raw
			_, err := svc.AddItem(ctx, input)
			assert.EqualError(t, err, "Expiration date must be a future date larger than today")
		}
	})

	t.Run("AcceptsRFC3339", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil)

		input := validInput(t)
		input.ExpireDate = time.Now().Add(48 * time.Hour).Format(time.RFC3339)
		it, err := svc.AddItem(ctx, input)
		assert.NoError(t, err)
		assert.True(t, it.ExpireDate.After(time.Now()))
	})
}

func TestExpiryWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	from, to := ExpiryWindow(now)

	assert.Equal(t, now, from)
	assert.Equal(t, now.AddDate(0, 0, ExpiryWindowDays), to)

	t.Run("BoundariesInclusive", func(t *testing.T) {
		assert.True(t, InExpiryWindow(now, now))
		assert.True(t, InExpiryWindow(now.AddDate(0, 0, 7), now))
		assert.False(t, InExpiryWindow(now.AddDate(0, 0, 8), now))
		assert.False(t, InExpiryWindow(now.Add(-time.Hour), now))
	})
}
