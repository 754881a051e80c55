package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upload-relay/internal/core/domain"
	"upload-relay/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlUploadRepository struct {
	db SQLQuerier
}

// NewSqlUploadRepository creates sqlUploadRepository that implements port.UploadRepository
func NewSqlUploadRepository(db SQLQuerier) port.UploadRepository {
	return &sqlUploadRepository{
		db: db,
	}
}

type dbUploadedObject struct {
	ID           uuid.UUID
	Key          string
	OriginalName string
	ContentType  string
	SizeBytes    int64
	OwnerID      uuid.UUID
	OwnerEmail   string
	Location     string
	UploadedAt   time.Time
}

func (d dbUploadedObject) ToDomain() domain.UploadedObject {
	return domain.UploadedObject{
		ID:           d.ID,
		Key:          d.Key,
		OriginalName: d.OriginalName,
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		OwnerID:      d.OwnerID,
		OwnerEmail:   d.OwnerEmail,
		Location:     d.Location,
		UploadedAt:   d.UploadedAt.UTC(),
	}
}

// Create records a stored object
func (s *sqlUploadRepository) Create(ctx context.Context, obj domain.UploadedObject) error {
	query := `INSERT INTO uploaded_objects (id, storage_key, original_name, content_type, size_bytes, owner_id, owner_email, location, uploaded_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query, obj.ID, obj.Key, obj.OriginalName, obj.ContentType, obj.SizeBytes,
		obj.OwnerID, obj.OwnerEmail, obj.Location, obj.UploadedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("upload %s : %w", obj.Key, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting uploaded object: %w", err)
	}
	return nil
}

// ListByOwner returns the newest uploads of ownerID first
func (s *sqlUploadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.UploadedObject, error) {
	query := `
		SELECT id, storage_key, original_name, content_type, size_bytes,
		       owner_id, owner_email, location, uploaded_at
		FROM uploaded_objects
		WHERE owner_id = $1
		ORDER BY uploaded_at DESC, id
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying uploaded objects: %w", err)
	}
	defer rows.Close()

	uploads := make([]domain.UploadedObject, 0)
	for rows.Next() {
		var row dbUploadedObject
		if err := rows.Scan(
			&row.ID,
			&row.Key,
			&row.OriginalName,
			&row.ContentType,
			&row.SizeBytes,
			&row.OwnerID,
			&row.OwnerEmail,
			&row.Location,
			&row.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning uploaded object: %w", err)
		}
		uploads = append(uploads, row.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating uploaded objects: %w", err)
	}

	return uploads, nil
}
