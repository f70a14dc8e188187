package search

import (
	"context"

	"github.com/veritaslabs/veritas/internal/model"
)

// Retriever turns a claim string into its best-matching piece of evidence.
//
// A nil *model.Evidence with a nil error means the search completed but
// found nothing; that is a valid terminal state, not a failure. Transport
// and rate-limit errors are returned so that decorators can observe them,
// but the claim pipeline converts any error into the absent-evidence state
// rather than letting it abort the claim.
type Retriever interface {
	Retrieve(ctx context.Context, claim string) (*model.Evidence, error)
}
