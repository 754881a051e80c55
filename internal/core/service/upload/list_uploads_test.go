package upload_test

import (
	"context"
	"testing"

	"upload-relay/internal/adapters/notifier"
	"upload-relay/internal/adapters/repository"
	"upload-relay/internal/adapters/storage"
	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_ListUploads(t *testing.T) {
	t.Run("history disabled", func(t *testing.T) {
		service := upload.NewUploadService(storage.NewMockStorage(), notifier.NewMockNotifier(), nil, nil, defaultCfg, discardLogger)

		uploads, err := service.ListUploads(context.Background(), admin, 10)

		assert.Nil(t, uploads)
		assert.ErrorIs(t, err, domain.ErrUploadHistoryDisabled)
	})

	t.Run("lists caller uploads", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockHistory := repository.NewMockUploadRepository()
		service := upload.NewUploadService(storage.NewMockStorage(), notifier.NewMockNotifier(), nil, mockHistory, defaultCfg, discardLogger)
		expected := []domain.UploadedObject{{Key: "1-cat.png", OwnerID: admin.ID}}
		mockHistory.On("ListByOwner", ctx, admin.ID, 10).Return(expected, nil).Once()

		// Act
		uploads, err := service.ListUploads(ctx, admin, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, uploads)
		mockHistory.AssertExpectations(t)
	})

	t.Run("limit falls back to default", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockHistory := repository.NewMockUploadRepository()
		service := upload.NewUploadService(storage.NewMockStorage(), notifier.NewMockNotifier(), nil, mockHistory, defaultCfg, discardLogger)
		mockHistory.On("ListByOwner", ctx, admin.ID, 50).Return([]domain.UploadedObject{}, nil).Twice()

		// Act
		_, errZero := service.ListUploads(ctx, admin, 0)
		_, errHuge := service.ListUploads(ctx, admin, 100000)

		// Assert
		require.NoError(t, errZero)
		require.NoError(t, errHuge)
		mockHistory.AssertExpectations(t)
	})
}
