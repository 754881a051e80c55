package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"upload-relay/internal/adapters/repository/postgres"
	"upload-relay/internal/config"
	"upload-relay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadedObject(owner uuid.UUID, name string, at time.Time) domain.UploadedObject {
	key := domain.NewObjectKey(at, name)
	return domain.UploadedObject{
		ID:           uuid.New(),
		Key:          key,
		OriginalName: name,
		ContentType:  "image/png",
		SizeBytes:    1024,
		OwnerID:      owner,
		OwnerEmail:   "admin@example.com",
		Location:     "s3://uploads/" + key,
		UploadedAt:   at.UTC().Truncate(time.Microsecond),
	}
}

func TestSqlUploadRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlUploadRepository(dbConnection)
	owner := uuid.New()

	t.Run("Create - Success", func(t *testing.T) {
		// Arrange
		truncate()
		obj := newUploadedObject(owner, "cat.png", time.Now())

		// Act
		err := repo.Create(ctx, obj)

		// Assert
		require.NoError(t, err)
		uploads, err := repo.ListByOwner(ctx, owner, 10)
		require.NoError(t, err)
		require.Len(t, uploads, 1)
		assert.Equal(t, obj.ID, uploads[0].ID)
		assert.Equal(t, obj.Key, uploads[0].Key)
		assert.Equal(t, obj.OriginalName, uploads[0].OriginalName)
		assert.Equal(t, obj.ContentType, uploads[0].ContentType)
		assert.Equal(t, obj.SizeBytes, uploads[0].SizeBytes)
		assert.Equal(t, obj.Location, uploads[0].Location)
		assert.True(t, obj.UploadedAt.Equal(uploads[0].UploadedAt))
	})

	t.Run("Create - Duplicate key", func(t *testing.T) {
		// Arrange
		truncate()
		obj := newUploadedObject(owner, "cat.png", time.Now())
		require.NoError(t, repo.Create(ctx, obj))
		dup := obj
		dup.ID = uuid.New()

		// Act
		err := repo.Create(ctx, dup)

		// Assert
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("ListByOwner - Newest first and limited", func(t *testing.T) {
		// Arrange
		truncate()
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Create(ctx, newUploadedObject(owner, fmt.Sprintf("f%d.png", i), base.Add(time.Duration(i)*time.Minute))))
		}

		// Act
		uploads, err := repo.ListByOwner(ctx, owner, 3)

		// Assert
		require.NoError(t, err)
		require.Len(t, uploads, 3)
		assert.Equal(t, "f4.png", uploads[0].OriginalName)
		assert.Equal(t, "f3.png", uploads[1].OriginalName)
		assert.Equal(t, "f2.png", uploads[2].OriginalName)
	})

	t.Run("ListByOwner - Other owner sees nothing", func(t *testing.T) {
		// Arrange
		truncate()
		require.NoError(t, repo.Create(ctx, newUploadedObject(owner, "cat.png", time.Now())))

		// Act
		uploads, err := repo.ListByOwner(ctx, uuid.New(), 10)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, uploads)
		assert.Empty(t, uploads)
	})
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "relay",
		Password: "secret",
		Name:     "uploads",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=relay password=secret dbname=uploads sslmode=disable", postgres.DSN(cfg))
}
