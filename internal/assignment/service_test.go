package assignment

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelops-be/internal/apperr"
	"hotelops-be/internal/order"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a *Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Assignment), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Assignment), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateAssignmentInput) (*Assignment, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Assignment), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateTx(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id string, input order.UpdateOrderInput) (*order.Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	orderID := uuid.NewString()

	t.Run("NoExistenceChecks", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockRepo, mockOrders)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil)

		a, err := svc.Create(ctx, CreateAssignmentInput{User: userID, OrderID: orderID})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, a.Status)
		assert.False(t, a.DateAssigned.IsZero())

		// referenced user and order are never looked up
		mockOrders.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("MalformedIDs", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockOrderRepository))

		_, err := svc.Create(ctx, CreateAssignmentInput{User: "nope", OrderID: orderID})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

		_, err = svc.Create(ctx, CreateAssignmentInput{User: userID, OrderID: "nope"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	liveOrderID := uuid.NewString()
	goneOrderID := uuid.NewString()

	t.Run("PopulatesOrdersAndSkipsDangling", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockOrders := new(MockOrderRepository)
		svc := NewService(mockRepo, mockOrders)

		mockRepo.On("GetAll", ctx).Return([]*Assignment{
			{ID: "a-1", OrderID: liveOrderID},
			{ID: "a-2", OrderID: goneOrderID},
		}, nil)
		mockOrders.On("GetByID", ctx, liveOrderID).
			Return(&order.Order{ID: liveOrderID, TotalPrice: 2200}, nil)
		mockOrders.On("GetByID", ctx, goneOrderID).Return(nil, sql.ErrNoRows)

		assignments, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, assignments, 2)

		require.NotNil(t, assignments[0].Order)
		assert.Equal(t, 2200.0, assignments[0].Order.TotalPrice)

		// deleted order leaves the assignment intact with a nil Order
		assert.Nil(t, assignments[1].Order)
		assert.Equal(t, goneOrderID, assignments[1].OrderID)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("StatusMovesFreely", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOrderRepository))

		completed := StatusCompleted
		pending := StatusPending
		mockRepo.On("Update", ctx, id, UpdateAssignmentInput{Status: &completed}).
			Return(&Assignment{ID: id, Status: StatusCompleted}, nil).Once()
		mockRepo.On("Update", ctx, id, UpdateAssignmentInput{Status: &pending}).
			Return(&Assignment{ID: id, Status: StatusPending}, nil).Once()

		a, err := svc.Update(ctx, id, UpdateAssignmentInput{Status: &completed})
		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, a.Status)

		a, err = svc.Update(ctx, id, UpdateAssignmentInput{Status: &pending})
		assert.NoError(t, err)
		assert.Equal(t, StatusPending, a.Status)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockOrderRepository))

		bad := Status("archived")
		_, err := svc.Update(ctx, id, UpdateAssignmentInput{Status: &bad})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockOrderRepository))

		completed := StatusCompleted
		mockRepo.On("Update", ctx, id, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, id, UpdateAssignmentInput{Status: &completed})
		assert.ErrorIs(t, err, ErrAssignmentNotFound)
	})
}
