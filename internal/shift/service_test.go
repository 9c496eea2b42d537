package shift

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelops-be/internal/apperr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, sh *Shift) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]*Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Shift), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Shift), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateShiftInput) (*Shift, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Shift), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	t.Run("DefaultsToScheduled", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*shift.Shift")).Return(nil)

		sh, err := svc.Create(ctx, CreateShiftInput{User: userID, StartTime: start, EndTime: end})
		assert.NoError(t, err)
		assert.Equal(t, StatusScheduled, sh.Status)
	})

	t.Run("MissingTimes", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Create(ctx, CreateShiftInput{User: userID})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		bad := Status("paused")
		_, err := svc.Create(ctx, CreateShiftInput{
			User: userID, StartTime: start, EndTime: end, Status: &bad,
		})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		id := uuid.NewString()
		mockRepo.On("GetByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrShiftNotFound)
	})
}
