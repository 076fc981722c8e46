package ratelimit

import "context"

// RateLimiter bounds request rates per caller key.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int) (bool, error)
}
