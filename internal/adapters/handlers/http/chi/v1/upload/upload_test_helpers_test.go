package upload_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken = "valid-token"
	maxUpload  = 10 << 20
)

var admin = domain.Identity{
	ID:    uuid.MustParse("6f1c2f54-3a9c-5b8e-9d0b-6a4f8d2e1c3b"),
	Email: "admin@example.com",
	Name:  "Admin User",
}

var authCfg = config.AuthConfig{CookieName: "session_token"}

func newRouter(t *testing.T, uploadService *upload.MockUploadService) http.Handler {
	t.Helper()
	return newRouterWithLimit(t, uploadService, maxUpload)
}

func newRouterWithLimit(t *testing.T, uploadService *upload.MockUploadService, limit int64) http.Handler {
	t.Helper()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService := auth.NewMockAuthService()
	authService.On("ResolveSession", validToken).Return(&admin, nil).Maybe()
	authService.On("ResolveSession", mock.Anything).Return((*domain.Identity)(nil), domain.ErrUnauthorized).Maybe()

	return chi.NewRouter(discardLogger,
		authhandler.NewAuthHandlerV1(authService, authCfg, discardLogger),
		uploadhandler.NewUploadHandlerV1(uploadService, limit, discardLogger),
		webhookhandler.NewWebhookHandlerV1(webhook.NewMockWebhookService(), discardLogger),
		"test", limit)
}

func authenticate(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: authCfg.CookieName, Value: validToken})
}

// multipartBody builds a form with one file part
func multipartBody(t *testing.T, field, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
