package retrieval

import (
	"context"
	"fmt"
	"strings"

	"ai-research-be/internal/entity"
	"ai-research-be/internal/pkg/logger"
)

// DefaultTopK is the document budget used when the caller passes k <= 0.
const DefaultTopK = 3

// Retriever evaluates an ordered chain of Sources until the document
// budget is filled. A failing source contributes zero documents and the
// chain moves on; the caller never sees a retrieval error. When every
// source comes back empty, a fixed set of synthetic placeholder documents
// is returned instead.
type Retriever struct {
	sources []Source
	log     logger.ILogger
}

func NewRetriever(log logger.ILogger, sources ...Source) *Retriever {
	return &Retriever{
		sources: sources,
		log:     log,
	}
}

// Retrieve returns up to k documents with unique ids, ordered by source
// priority and relevance within each source.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) []entity.Document {
	if k <= 0 {
		k = DefaultTopK
	}

	var results []entity.Document
	seen := make(map[string]struct{})

	for _, src := range r.sources {
		if len(results) >= k {
			break
		}
		docs, err := src.Fetch(ctx, query, k-len(results))
		if err != nil {
			// Degradation is silent towards the caller; the log keeps
			// the trail.
			r.log.Warn("retrieval", "source failed, continuing chain", map[string]interface{}{
				"source": src.Name(),
				"query":  query,
				"error":  err.Error(),
			})
			continue
		}
		for _, d := range docs {
			if _, dup := seen[d.Id]; dup {
				continue
			}
			seen[d.Id] = struct{}{}
			results = append(results, d)
			if len(results) >= k {
				break
			}
		}
	}

	// The placeholder set only fires when every real source came back
	// empty, not when results are merely below budget.
	if len(results) == 0 {
		return SyntheticDocuments(query)
	}
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// SyntheticDocuments builds the fixed three-document placeholder set from
// the first three whitespace tokens of the query.
func SyntheticDocuments(query string) []entity.Document {
	fields := strings.Fields(query)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	key := strings.Join(fields, " ")
	if key == "" {
		key = query
	}

	return []entity.Document{
		{
			Id:     "doc1",
			Title:  fmt.Sprintf("%s — intro", key),
			Text:   fmt.Sprintf("Intro about %s. Keep it short and actionable.", key),
			Source: "synthetic",
		},
		{
			Id:     "doc2",
			Title:  fmt.Sprintf("%s — use-cases", key),
			Text:   fmt.Sprintf("Common use cases and quick examples for %s.", key),
			Source: "synthetic",
		},
		{
			Id:     "doc3",
			Title:  fmt.Sprintf("%s — tips", key),
			Text:   "Helpful tips: split tasks, persist state, and iterate quickly.",
			Source: "synthetic",
		},
	}
}
