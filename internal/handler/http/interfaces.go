package http

import "context"

//go:generate mockgen -source=interfaces.go -destination=../../mock/request_limiter_mock.go -package=mock

// RequestLimiter counts hits per key and reports whether the caller is still
// within its allowance.
type RequestLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
