package domain

import "time"

// Cache is the slice of the redis cache the read paths need. Services accept
// nil when caching is disabled (tests, local runs without redis).
type Cache interface {
	Get(key string, dest any) error
	Set(key string, value any, expiration time.Duration) error
	Delete(keys ...string) error
}
