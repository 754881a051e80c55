package domain

import "time"

// WebhookEvent names the event carried by a webhook payload
type WebhookEvent string

const (
	WebhookEventFileUploaded WebhookEvent = "file.uploaded"
)

// WebhookPayload is the upload metadata forwarded to the webhook receiver
type WebhookPayload struct {
	Event        WebhookEvent `json:"event"`
	SignedURL    string       `json:"signedUrl"`
	FileName     string       `json:"fileName"`
	OriginalName string       `json:"originalName"`
	ContentType  string       `json:"contentType"`
	Size         int64        `json:"size"`
	UploadedBy   string       `json:"uploadedBy"`
	UploadedAt   time.Time    `json:"uploadedAt"`
}

// NewWebhookPayload builds the payload for a stored and signed object
func NewWebhookPayload(obj UploadedObject, signed SignedURL) WebhookPayload {
	return WebhookPayload{
		Event:        WebhookEventFileUploaded,
		SignedURL:    signed.URL,
		FileName:     obj.Key,
		OriginalName: obj.OriginalName,
		ContentType:  obj.ContentType,
		Size:         obj.SizeBytes,
		UploadedBy:   obj.OwnerEmail,
		UploadedAt:   obj.UploadedAt,
	}
}

// WebhookDelivery describes the upstream answer to a webhook call
type WebhookDelivery struct {
	StatusCode int
	StatusText string
	Body       string
}

// OK reports whether the receiver answered with a 2xx status
func (d WebhookDelivery) OK() bool {
	return d.StatusCode >= 200 && d.StatusCode < 300
}
