package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/veritaslabs/veritas/internal/cache"
	"github.com/veritaslabs/veritas/internal/model"
)

type countingRetriever struct {
	calls    int
	evidence *model.Evidence
	err      error
}

func (r *countingRetriever) Retrieve(ctx context.Context, claim string) (*model.Evidence, error) {
	r.calls++
	return r.evidence, r.err
}

func TestCachedRetriever_HitSkipsInner(t *testing.T) {
	inner := &countingRetriever{evidence: &model.Evidence{Content: "snippet", URL: "https://example.com"}}
	cached := NewCachedRetriever(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	first, err := cached.Retrieve(context.Background(), "The sky is blue")
	if err != nil {
		t.Fatalf("First retrieve failed: %v", err)
	}
	second, err := cached.Retrieve(context.Background(), "The sky is blue")
	if err != nil {
		t.Fatalf("Second retrieve failed: %v", err)
	}

	if inner.calls != 1 {
		t.Errorf("Expected 1 inner call, got %d", inner.calls)
	}
	if second == nil || second.URL != first.URL || second.Content != first.Content {
		t.Errorf("Cached evidence differs: %+v vs %+v", first, second)
	}
}

func TestCachedRetriever_DistinctClaimsMiss(t *testing.T) {
	inner := &countingRetriever{evidence: &model.Evidence{Content: "snippet", URL: "https://example.com"}}
	cached := NewCachedRetriever(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	_, _ = cached.Retrieve(context.Background(), "claim one")
	_, _ = cached.Retrieve(context.Background(), "claim two")

	if inner.calls != 2 {
		t.Errorf("Expected 2 inner calls for distinct claims, got %d", inner.calls)
	}
}

func TestCachedRetriever_AbsentEvidenceCached(t *testing.T) {
	inner := &countingRetriever{evidence: nil}
	cached := NewCachedRetriever(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	ev, err := cached.Retrieve(context.Background(), "obscure claim")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if ev != nil {
		t.Fatalf("Expected nil evidence, got %+v", ev)
	}

	_, _ = cached.Retrieve(context.Background(), "obscure claim")

	if inner.calls != 1 {
		t.Errorf("Expected absent result to be cached, got %d inner calls", inner.calls)
	}
}

func TestCachedRetriever_ErrorsNotCached(t *testing.T) {
	inner := &countingRetriever{err: fmt.Errorf("search unavailable")}
	cached := NewCachedRetriever(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	if _, err := cached.Retrieve(context.Background(), "claim"); err == nil {
		t.Fatal("Expected error, got nil")
	}

	inner.err = nil
	inner.evidence = &model.Evidence{Content: "snippet", URL: "https://example.com"}

	ev, err := cached.Retrieve(context.Background(), "claim")
	if err != nil {
		t.Fatalf("Retrieve after recovery failed: %v", err)
	}
	if ev == nil {
		t.Fatal("Expected evidence after recovery, got nil")
	}
	if inner.calls != 2 {
		t.Errorf("Expected 2 inner calls, got %d", inner.calls)
	}
}

func TestCachedRetriever_CorruptEntryDropped(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute, time.Minute)
	_ = store.Set(cache.Key("claim"), []byte("{not json"), time.Minute)

	inner := &countingRetriever{evidence: &model.Evidence{Content: "snippet", URL: "https://example.com"}}
	cached := NewCachedRetriever(inner, store, time.Minute)

	ev, err := cached.Retrieve(context.Background(), "claim")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if ev == nil || ev.URL != "https://example.com" {
		t.Errorf("Expected fresh evidence after corrupt entry, got %+v", ev)
	}
	if inner.calls != 1 {
		t.Errorf("Expected corrupt entry to trigger a fresh search, got %d calls", inner.calls)
	}
}
