package conflict

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockResolutionStore implements the ResolutionStore interface for testing
type MockResolutionStore struct {
	mock.Mock
}

// Get implements the ResolutionStore interface
func (m *MockResolutionStore) Get(ctx context.Context, conflictID string) (mo.Option[Resolution], error) {
	args := m.Called(ctx, conflictID)
	return args.Get(0).(mo.Option[Resolution]), args.Error(1)
}

// Accept implements the ResolutionStore interface
func (m *MockResolutionStore) Accept(ctx context.Context, res Resolution) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

// Remove implements the ResolutionStore interface
func (m *MockResolutionStore) Remove(ctx context.Context, conflictID string) error {
	args := m.Called(ctx, conflictID)
	return args.Error(0)
}
