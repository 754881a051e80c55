package webhook_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"upload-relay/internal/adapters/handlers/http/chi"
	authhandler "upload-relay/internal/adapters/handlers/http/chi/v1/auth"
	uploadhandler "upload-relay/internal/adapters/handlers/http/chi/v1/upload"
	webhookhandler "upload-relay/internal/adapters/handlers/http/chi/v1/webhook"
	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/service/auth"
	"upload-relay/internal/core/service/upload"
	"upload-relay/internal/core/service/webhook"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var admin = domain.Identity{
	ID:    uuid.MustParse("6f1c2f54-3a9c-5b8e-9d0b-6a4f8d2e1c3b"),
	Email: "admin@example.com",
	Name:  "Admin User",
}

func newRouter(webhookService *webhook.MockWebhookService) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService := auth.NewMockAuthService()
	authService.On("ResolveSession", validToken).Return(&admin, nil).Maybe()
	authService.On("ResolveSession", mock.Anything).Return((*domain.Identity)(nil), domain.ErrUnauthorized).Maybe()

	return chi.NewRouter(discardLogger,
		authhandler.NewAuthHandlerV1(authService, config.AuthConfig{CookieName: "session_token"}, discardLogger),
		uploadhandler.NewUploadHandlerV1(upload.NewMockUploadService(), 10<<20, discardLogger),
		webhookhandler.NewWebhookHandlerV1(webhookService, discardLogger),
		"test", 10<<20)
}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook-test", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func TestTestWebhookV1_Success(t *testing.T) {
	// Arrange
	mockService := webhook.NewMockWebhookService()
	mockService.On("TestWebhook", mock.Anything, admin, map[string]any{"foo": "bar"}).
		Return(&domain.WebhookDelivery{StatusCode: 200, StatusText: "OK", Body: "accepted"}, nil)
	h := newRouter(mockService)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, newRequest(`{"foo":"bar"}`))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
	var response webhookhandler.V1TestWebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 200, response.Status)
	assert.Equal(t, "Webhook called successfully", response.Message)
	assert.Equal(t, "accepted", response.Response)
}

func TestTestWebhookV1_EmptyBody(t *testing.T) {
	// Arrange
	mockService := webhook.NewMockWebhookService()
	mockService.On("TestWebhook", mock.Anything, admin, map[string]any{}).
		Return(&domain.WebhookDelivery{StatusCode: 204, StatusText: "No Content"}, nil)
	h := newRouter(mockService)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, newRequest(""))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTestWebhookV1_UpstreamRejects(t *testing.T) {
	// Arrange
	mockService := webhook.NewMockWebhookService()
	mockService.On("TestWebhook", mock.Anything, admin, mock.Anything).
		Return(&domain.WebhookDelivery{StatusCode: 404, StatusText: "Not Found", Body: "no hook"}, nil)
	h := newRouter(mockService)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, newRequest(`{}`))

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"status":404,"statusText":"Not Found","message":"Webhook call failed"}`, w.Body.String())
}

func TestTestWebhookV1_TransportFailure(t *testing.T) {
	// Arrange
	mockService := webhook.NewMockWebhookService()
	mockService.On("TestWebhook", mock.Anything, admin, mock.Anything).
		Return((*domain.WebhookDelivery)(nil), errors.Join(domain.ErrNotificationFailure, errors.New("context deadline exceeded")))
	h := newRouter(mockService)
	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, newRequest(`{}`))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response webhookhandler.V1TestWebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Webhook test failed", response.Message)
	assert.Contains(t, response.Error, "deadline")
}

func TestTestWebhookV1_Rejected(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		// Arrange
		mockService := webhook.NewMockWebhookService()
		h := newRouter(mockService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook-test", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "TestWebhook", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		// Arrange
		mockService := webhook.NewMockWebhookService()
		h := newRouter(mockService)
		w := httptest.NewRecorder()

		// Act
		h.ServeHTTP(w, newRequest(`[1,2`))

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "TestWebhook", mock.Anything, mock.Anything, mock.Anything)
	})
}
