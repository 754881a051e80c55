package repository

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUploadRepository struct {
	mock.Mock
}

func NewMockUploadRepository() *MockUploadRepository {
	return &MockUploadRepository{}
}

func (m *MockUploadRepository) Create(ctx context.Context, obj domain.UploadedObject) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *MockUploadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.UploadedObject, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]domain.UploadedObject), args.Error(1)
}
