package notifier

import (
	"context"

	"upload-relay/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(ctx context.Context, payload domain.WebhookPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockNotifier) Send(ctx context.Context, body any) (*domain.WebhookDelivery, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(*domain.WebhookDelivery), args.Error(1)
}
