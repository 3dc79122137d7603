package ports

import (
	"context"
	"time"
)

// URLSigner mints a time-bounded download URL for an object key. The URL is a
// bearer credential: implementations must not log or persist it.
type URLSigner interface {
	SignDownload(ctx context.Context, fileKey string, ttl time.Duration) (string, error)
}
