package redis

import "context"

// PassengerCacheInterface defines the cache operations used by the
// passenger service. This interface allows testing with mock
// implementations.
type PassengerCacheInterface interface {
	GetPassenger(ctx context.Context, userID string) (*CachedPassenger, error)
	SetPassenger(ctx context.Context, cached *CachedPassenger) error
	InvalidatePassenger(ctx context.Context, userID string) error
}

// Ensure concrete types implement interfaces.
var _ PassengerCacheInterface = (*CacheStore)(nil)
