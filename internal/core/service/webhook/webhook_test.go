package webhook_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"upload-relay/internal/adapters/notifier"
	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/service/webhook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var admin = domain.Identity{Email: "admin@example.com", Name: "Admin User"}

func TestWebhookService_TestWebhook(t *testing.T) {
	t.Run("merges body over test payload", func(t *testing.T) {
		// Arrange
		mockNotifier := notifier.NewMockNotifier()
		service := webhook.NewWebhookService(mockNotifier, discardLogger)
		delivery := &domain.WebhookDelivery{StatusCode: 200, StatusText: "200 OK", Body: "received"}

		mockNotifier.On("Send", mock.Anything, mock.MatchedBy(func(body any) bool {
			payload, ok := body.(map[string]any)
			return ok &&
				payload["test"] == true &&
				payload["message"] == "custom message" &&
				payload["priceListId"] == "pl-42" &&
				payload["triggeredBy"] == admin.Email &&
				payload["timestamp"] != nil
		})).Return(delivery, nil).Once()

		// Act
		result, err := service.TestWebhook(context.Background(), admin, map[string]any{
			"message":     "custom message",
			"priceListId": "pl-42",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, delivery, result)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("non-2xx is returned as delivery", func(t *testing.T) {
		// Arrange
		mockNotifier := notifier.NewMockNotifier()
		service := webhook.NewWebhookService(mockNotifier, discardLogger)
		delivery := &domain.WebhookDelivery{StatusCode: 404, StatusText: "404 Not Found"}
		mockNotifier.On("Send", mock.Anything, mock.Anything).Return(delivery, nil)

		// Act
		result, err := service.TestWebhook(context.Background(), admin, nil)

		// Assert
		require.NoError(t, err)
		assert.False(t, result.OK())
	})

	t.Run("transport failure", func(t *testing.T) {
		// Arrange
		mockNotifier := notifier.NewMockNotifier()
		service := webhook.NewWebhookService(mockNotifier, discardLogger)
		mockNotifier.On("Send", mock.Anything, mock.Anything).Return((*domain.WebhookDelivery)(nil), errors.New("connection refused"))

		// Act
		result, err := service.TestWebhook(context.Background(), admin, map[string]any{})

		// Assert
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotificationFailure)
	})
}
