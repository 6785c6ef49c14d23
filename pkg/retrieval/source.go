package retrieval

import (
	"context"

	"ai-research-be/internal/entity"
)

// Source is one fallible document provider in the retrieval chain.
// Implementations return whatever they can find, up to limit documents,
// ordered by relevance descending. A Source that finds nothing returns an
// empty slice; errors are recovered by the Retriever and treated the same
// way.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]entity.Document, error)
}
