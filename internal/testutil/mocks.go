package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
)

// MockAlertRepository is a mock implementation of alert.Repository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*alert.Alert)
	return a, args.Error(1)
}

func (m *MockAlertRepository) List(ctx context.Context) ([]*alert.Alert, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*alert.Alert)
	return list, args.Error(1)
}

func (m *MockAlertRepository) Update(ctx context.Context, id string, fn func(*alert.Alert) error) (*alert.Alert, error) {
	args := m.Called(ctx, id, fn)
	a, _ := args.Get(0).(*alert.Alert)
	return a, args.Error(1)
}

func (m *MockAlertRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockTransactionRepository is a mock implementation of transaction.Repository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transaction.Transaction)
	return t, args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*transaction.Transaction, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*transaction.Transaction)
	return list, args.Error(1)
}

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*user.User)
	return list, args.Error(1)
}
