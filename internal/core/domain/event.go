package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadEvent is published on the event broker once an object is stored
type UploadEvent struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	OwnerID      uuid.UUID `json:"owner_id"`
	OwnerEmail   string    `json:"owner_email"`
	Location     string    `json:"location"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// NewUploadEvent converts an uploaded object to its broker event
func NewUploadEvent(obj UploadedObject) UploadEvent {
	return UploadEvent{
		ID:           obj.ID,
		Key:          obj.Key,
		OriginalName: obj.OriginalName,
		ContentType:  obj.ContentType,
		SizeBytes:    obj.SizeBytes,
		OwnerID:      obj.OwnerID,
		OwnerEmail:   obj.OwnerEmail,
		Location:     obj.Location,
		UploadedAt:   obj.UploadedAt,
	}
}
