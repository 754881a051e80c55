package domain

import (
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Blob is a file payload handed to the object store
type Blob struct {
	Body         io.Reader
	OriginalName string
	ContentType  string
	Size         int64
}

// UploadedObject represents a file accepted by the object store
type UploadedObject struct {
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

// UploadResult is what the upload pipeline hands back to the caller
type UploadResult struct {
	Object    UploadedObject
	SignedURL *SignedURL
}

// NewObjectKey builds the storage key for an uploaded file: the upload time in
// epoch milliseconds followed by the base name of the original file.
// Keys are not guaranteed unique, two uploads of the same name within one
// millisecond collide.
func NewObjectKey(now time.Time, originalName string) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeFileName(originalName))
}

// ObjectKeyTime returns the upload time encoded in key by NewObjectKey
func ObjectKeyTime(key string) (time.Time, bool) {
	prefix, _, found := strings.Cut(key, "-")
	if !found {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil || millis < 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(millis).UTC(), true
}

// SanitizeFileName strips any directory part a client may have sent
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(name)
	if base == "." || base == "/" {
		return "file"
	}
	return base
}
