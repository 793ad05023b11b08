package game

import (
	"context"
	"roulette_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository is a mock implementation of repository.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Insert(ctx context.Context, record *model.ResultRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) Get(ctx context.Context, id uuid.UUID, serviceID string) (*model.ResultRecord, error) {
	args := m.Called(ctx, id, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResultRecord), args.Error(1)
}

func (m *MockRecordRepository) Len() int {
	args := m.Called()
	return args.Int(0)
}
