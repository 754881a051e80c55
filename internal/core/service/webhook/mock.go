package webhook

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockWebhookService is a mock implementation of WebhookService
type MockWebhookService struct {
	mock.Mock
}

// NewMockWebhookService creates a new MockWebhookService
func NewMockWebhookService() *MockWebhookService {
	return &MockWebhookService{}
}

func (m *MockWebhookService) TestWebhook(ctx context.Context, identity domain.Identity, body map[string]any) (*domain.WebhookDelivery, error) {
	args := m.Called(ctx, identity, body)
	return args.Get(0).(*domain.WebhookDelivery), args.Error(1)
}
