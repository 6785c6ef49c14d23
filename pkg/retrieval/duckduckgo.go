package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ai-research-be/internal/entity"
)

const defaultDuckDuckGoBaseURL = "https://api.duckduckgo.com"

// maxRelatedTopics caps the related-topic snippets taken from one answer.
const maxRelatedTopics = 2

// DuckDuckGoSource queries the Instant Answer API (no key required) for an
// abstract plus a couple of related-topic snippets.
type DuckDuckGoSource struct {
	BaseURL string
	Client  *http.Client
}

func NewDuckDuckGoSource() *DuckDuckGoSource {
	return &DuckDuckGoSource{
		BaseURL: defaultDuckDuckGoBaseURL,
		Client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (s *DuckDuckGoSource) Name() string {
	return "duckduckgo"
}

type ddgResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Answer        string `json:"Answer"`
	RelatedTopics []struct {
		Name     string `json:"Name"`
		Text     string `json:"Text"`
		Result   string `json:"Result"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

func (s *DuckDuckGoSource) Fetch(ctx context.Context, query string, limit int) ([]entity.Document, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	endpoint := s.BaseURL + "/?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo: status %d", resp.StatusCode)
	}

	var parsed ddgResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	var docs []entity.Document

	abstract := parsed.AbstractText
	if abstract == "" {
		abstract = parsed.Answer
	}
	if abstract != "" {
		docs = append(docs, entity.Document{
			Id:     "ddg_abstract",
			Title:  "DuckDuckGo: " + query,
			Text:   abstract,
			Url:    parsed.AbstractURL,
			Source: s.Name(),
		})
	}

	count := 0
	for _, topic := range parsed.RelatedTopics {
		text := topic.Text
		if text == "" {
			text = topic.Result
		}
		if text == "" {
			continue
		}
		title := topic.Name
		if title == "" {
			title = fmt.Sprintf("Related %d", count)
		}
		docs = append(docs, entity.Document{
			Id:     fmt.Sprintf("ddg_rel_%d", count),
			Title:  title,
			Text:   text,
			Url:    topic.FirstURL,
			Source: s.Name(),
		})
		count++
		if count >= maxRelatedTopics {
			break
		}
	}

	return docs, nil
}
