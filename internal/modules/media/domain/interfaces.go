package domain

import (
	"context"
	"io"
)

// BlobStorage is the write-only blob capability profile images go through.
// Implemented by S3/MinIO; anything that can stream an object under a key
// would do.
type BlobStorage interface {
	Upload(ctx context.Context, key string, file io.Reader, contentType string) error
}
