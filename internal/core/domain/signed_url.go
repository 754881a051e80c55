package domain

import "time"

// SignedURL is a time-limited capability URL for one operation on one key.
// Fields is only set for POST policy uploads and holds the form fields the
// client must send along with the file.
type SignedURL struct {
	Key       string
	Method    string
	URL       string
	Fields    map[string]string
	ExpiresAt time.Time
}
