package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the byte store the retrieval layer caches evidence in. Delete
// exists so callers can drop entries that fail to decode.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

// Key generates a cache key from a claim string
func Key(claim string) string {
	hash := sha256.Sum256([]byte(claim))
	return "veritas:v1:" + hex.EncodeToString(hash[:])
}
