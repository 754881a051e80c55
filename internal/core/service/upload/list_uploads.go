package upload

import (
	"context"

	"upload-relay/internal/core/domain"
)

const defaultListLimit = 50

func (u *uploadService) ListUploads(ctx context.Context, identity domain.Identity, limit int) ([]domain.UploadedObject, error) {
	if u.history == nil {
		return nil, domain.ErrUploadHistoryDisabled
	}
	if limit <= 0 || limit > 500 {
		limit = defaultListLimit
	}
	return u.history.ListByOwner(ctx, identity.ID, limit)
}
