package domain

import "errors"

// ErrInvalidCredentials is an error thrown when sign in credentials do not match
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized is an error thrown when a request carries no valid session
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidSession is an error thrown when a session token cannot be verified
var ErrInvalidSession = errors.New("invalid session")

// ErrNoFileProvided is an error thrown when the upload carries no file
var ErrNoFileProvided = errors.New("no file provided")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type. Only PDF and image files are allowed")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size exceeds the upload limit")

// ErrMissingFileName is an error thrown when a file name is required but absent
var ErrMissingFileName = errors.New("fileName is required")

// ErrStorageFailure is an error thrown when the object store rejects a write or a signature
var ErrStorageFailure = errors.New("storage failure")

// ErrNotificationFailure is an error thrown when the webhook receiver is unreachable or answers non-2xx
var ErrNotificationFailure = errors.New("notification failure")

// ErrUploadHistoryDisabled is an error thrown when upload history is not configured
var ErrUploadHistoryDisabled = errors.New("upload history is not enabled")

// ErrAlreadyExists is an error thrown when a record with the same identity is already stored
var ErrAlreadyExists = errors.New("already exists")
