package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arabello/hub-frontend-new/internal/domain"
)

// MockIndexSource is a mock of IndexSource.
type MockIndexSource struct {
	mock.Mock
}

func (m *MockIndexSource) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}
