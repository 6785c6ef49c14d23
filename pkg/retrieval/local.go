package retrieval

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ai-research-be/internal/entity"
	"ai-research-be/pkg/utils"
)

// MaxLocalDocChars caps the text carried out of a local corpus file.
const MaxLocalDocChars = 2000

// LocalSource ranks plain-text files from a corpus directory by
// bag-of-words overlap with the query. A missing directory is not an
// error, it simply yields zero matches.
type LocalSource struct {
	Dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Dir: dir}
}

func (s *LocalSource) Name() string {
	return "local"
}

func (s *LocalSource) Fetch(ctx context.Context, query string, limit int) ([]entity.Document, error) {
	info, err := os.Stat(s.Dir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	dirEntries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	queryTokens := utils.TokenSet(query)

	type scoredFile struct {
		name  string
		text  string
		score int
	}
	var scored []scoredFile

	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(de.Name()), ".txt") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.Dir, de.Name()))
		if err != nil {
			// Treat an unreadable file as empty, same as any other
			// source failure.
			raw = nil
		}
		text := string(raw)
		scored = append(scored, scoredFile{
			name:  de.Name(),
			text:  text,
			score: utils.OverlapScore(queryTokens, utils.TokenSet(text)),
		})
	}

	// Relevance descending; ties keep directory enumeration order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Blank files still occupy a ranking slot; they are skipped, not
	// replaced by lower-ranked files.
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	var docs []entity.Document
	for _, f := range scored {
		if strings.TrimSpace(f.text) == "" {
			continue
		}
		docs = append(docs, entity.Document{
			Id:     f.name,
			Title:  f.name,
			Text:   utils.TruncateRunes(f.text, MaxLocalDocChars),
			Source: s.Name(),
		})
	}
	return docs, nil
}
