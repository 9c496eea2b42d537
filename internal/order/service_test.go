package order

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/food"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTx(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateOrderInput) (*Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFoodRepository is a mock implementation of food.Repository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(ctx context.Context, input food.CreateFoodItemInput) (*food.FoodItem, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) GetAll(ctx context.Context) ([]*food.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*food.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) GetByID(ctx context.Context, id string) (*food.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Update(ctx context.Context, id string, input food.UpdateFoodItemInput) (*food.FoodItem, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	riceID := uuid.NewString()
	curryID := uuid.NewString()

	rice := &food.FoodItem{ID: riceID, Name: "Fried Rice", Price: 500}
	curry := &food.FoodItem{ID: curryID, Name: "Chicken Curry", Price: 1200}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockFood := new(MockFoodRepository)
		svc := NewService(mockRepo, mockFood)

		mockFood.On("GetByID", ctx, riceID).Return(rice, nil)
		mockFood.On("GetByID", ctx, curryID).Return(curry, nil)
		mockRepo.On("CreateTx", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*Order)
				o.ID = uuid.NewString()
			}).
			Return(nil)

		o, err := svc.Create(ctx, CreateOrderInput{
			UserID: userID,
			Items: []LineItemInput{
				{FoodItem: riceID, Quantity: 2},
				{FoodItem: curryID, Quantity: 1},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 2200.0, o.TotalPrice)
		assert.Equal(t, StatusPending, o.Status)
		assert.Len(t, o.Items, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UnknownFoodItem", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockFood := new(MockFoodRepository)
		svc := NewService(mockRepo, mockFood)

		ghostID := uuid.NewString()
		mockFood.On("GetByID", ctx, riceID).Return(rice, nil)
		mockFood.On("GetByID", ctx, ghostID).Return(nil, sql.ErrNoRows)

		_, err := svc.Create(ctx, CreateOrderInput{
			UserID: userID,
			Items: []LineItemInput{
				{FoodItem: riceID, Quantity: 1},
				{FoodItem: ghostID, Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, ErrFoodItemNotFound)
		mockRepo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything)
	})

	t.Run("EmptyItems", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockFoodRepository))

		_, err := svc.Create(ctx, CreateOrderInput{UserID: userID})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockFoodRepository))

		_, err := svc.Create(ctx, CreateOrderInput{
			UserID: userID,
			Items:  []LineItemInput{{FoodItem: riceID, Quantity: 0}},
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("InvalidUserID", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockFoodRepository))

		_, err := svc.Create(ctx, CreateOrderInput{
			UserID: "not-a-uuid",
			Items:  []LineItemInput{{FoodItem: riceID, Quantity: 1}},
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("AnyStatusMovesToAnyOther", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockFoodRepository))

		completed := StatusCompleted
		pending := StatusPending
		mockRepo.On("Update", ctx, id, UpdateOrderInput{Status: &completed}).
			Return(&Order{ID: id, Status: StatusCompleted}, nil).Once()
		mockRepo.On("Update", ctx, id, UpdateOrderInput{Status: &pending}).
			Return(&Order{ID: id, Status: StatusPending}, nil).Once()

		o, err := svc.Update(ctx, id, UpdateOrderInput{Status: &completed})
		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, o.Status)

		o, err = svc.Update(ctx, id, UpdateOrderInput{Status: &pending})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockFoodRepository))

		bad := Status("shipped")
		_, err := svc.Update(ctx, id, UpdateOrderInput{Status: &bad})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockFoodRepository))

		completed := StatusCompleted
		mockRepo.On("Update", ctx, id, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, id, UpdateOrderInput{Status: &completed})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
