package repositories

import (
	"context"
	"time"
)

// Part is one finished multipart piece: its 1-based number and the ETag the
// backend returned for it.
type Part struct {
	Number int32
	ETag   string
}

// ObjectStorage is what the upload usecase needs from the storage backend.
// The multipart semantics themselves live in the backend; this layer only
// orchestrates the calls.
type ObjectStorage interface {
	// CreateMultipart opens a multipart upload for key and returns the
	// upload id plus one presigned part URL per part, in part order.
	CreateMultipart(ctx context.Context, key, contentType string, partCount int, ttl time.Duration) (uploadID string, urls []string, err error)

	// CompleteMultipart assembles the object from the given parts and
	// returns the backend-reported location, which may be empty.
	CompleteMultipart(ctx context.Context, key, uploadID string, parts []Part) (location string, err error)

	// AbortMultipart discards an in-progress upload and its parts.
	AbortMultipart(ctx context.Context, key, uploadID string) error

	// PublicURL resolves the externally visible URL for an assembled object.
	PublicURL(key, location string) string
}
