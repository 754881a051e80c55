package storage

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Store(ctx context.Context, blob domain.Blob) (string, error) {
	args := m.Called(ctx, blob)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) SignForRead(ctx context.Context, key string) (*domain.SignedURL, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(*domain.SignedURL), args.Error(1)
}

func (m *MockStorage) SignForWrite(ctx context.Context, key string, contentType string, maxSize int64) (*domain.SignedURL, error) {
	args := m.Called(ctx, key, contentType, maxSize)
	return args.Get(0).(*domain.SignedURL), args.Error(1)
}

func (m *MockStorage) Location(key string) string {
	args := m.Called(key)
	return args.String(0)
}
