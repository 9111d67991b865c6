// Package adapter defines the interfaces (ports) used by the application layer.
package adapter

import (
	"context"
	"time"
)

// IndicatorCache defines the interface for caching serialized macroeconomic
// indicator snapshots.
type IndicatorCache interface {
	// Get returns the cached payload for key, or ("", nil) on a cache miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores payload under key with the given TTL.
	Set(ctx context.Context, key, payload string, ttl time.Duration) error
}
