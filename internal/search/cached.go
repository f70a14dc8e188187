package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/veritaslabs/veritas/internal/cache"
	"github.com/veritaslabs/veritas/internal/model"
)

// CachedRetriever decorates a Retriever with a TTL cache keyed by claim
// text. Repeated requests containing the same claim skip the search API.
// Absent results are cached too: "no evidence" is a valid terminal state
// worth remembering for the TTL window.
type CachedRetriever struct {
	inner Retriever
	store cache.Cache
	ttl   time.Duration
}

// NewCachedRetriever wraps inner with the given cache store
func NewCachedRetriever(inner Retriever, store cache.Cache, ttl time.Duration) *CachedRetriever {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedRetriever{
		inner: inner,
		store: store,
		ttl:   ttl,
	}
}

// Retrieve returns the cached evidence for the claim, or delegates to the
// inner retriever on a miss. Errors are never cached.
func (r *CachedRetriever) Retrieve(ctx context.Context, claim string) (*model.Evidence, error) {
	key := cache.Key(claim)

	if raw, found := r.store.Get(key); found {
		var ev *model.Evidence
		if err := json.Unmarshal(raw, &ev); err == nil {
			return ev, nil
		}
		// Corrupt entry: drop it and fall through to a fresh search
		_ = r.store.Delete(key)
	}

	ev, err := r.inner.Retrieve(ctx, claim)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(ev); err == nil {
		_ = r.store.Set(key, raw, r.ttl)
	}

	return ev, nil
}
