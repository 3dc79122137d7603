package ports

import (
	"context"
	"time"
)

// RateLimitStore meters requests per identity inside a fixed window. Allow
// consumes one unit for the identity and reports whether the request is still
// within budget.
type RateLimitStore interface {
	Allow(ctx context.Context, identity string, now time.Time) (bool, error)
}
