package upload

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

// NewMockUploadService creates a new MockUploadService
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) UploadFile(ctx context.Context, identity domain.Identity, blob domain.Blob) (*domain.UploadResult, error) {
	args := m.Called(ctx, identity, blob)
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockUploadService) SignDownloadURL(ctx context.Context, fileName string) (*domain.SignedURL, error) {
	args := m.Called(ctx, fileName)
	return args.Get(0).(*domain.SignedURL), args.Error(1)
}

func (m *MockUploadService) SignUploadURL(ctx context.Context, fileName string, contentType string) (*domain.SignedURL, error) {
	args := m.Called(ctx, fileName, contentType)
	return args.Get(0).(*domain.SignedURL), args.Error(1)
}

func (m *MockUploadService) ListUploads(ctx context.Context, identity domain.Identity, limit int) ([]domain.UploadedObject, error) {
	args := m.Called(ctx, identity, limit)
	return args.Get(0).([]domain.UploadedObject), args.Error(1)
}
