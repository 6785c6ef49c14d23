package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ai-research-be/internal/entity"
)

const defaultWikipediaBaseURL = "https://en.wikipedia.org"

// WikipediaSource searches the encyclopedia index for the query, then
// fetches a short plain-text extract of the top hit. It contributes at
// most one document.
type WikipediaSource struct {
	BaseURL   string
	Sentences int
	Client    *http.Client
}

func NewWikipediaSource() *WikipediaSource {
	return &WikipediaSource{
		BaseURL:   defaultWikipediaBaseURL,
		Sentences: 3,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *WikipediaSource) Name() string {
	return "wikipedia"
}

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiExtractResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

func (s *WikipediaSource) Fetch(ctx context.Context, query string, limit int) ([]entity.Document, error) {
	title, err := s.search(ctx, query)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, nil
	}

	extract, err := s.extract(ctx, title)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(extract) == "" {
		return nil, nil
	}

	return []entity.Document{{
		Id:     "wiki:" + title,
		Title:  "Wikipedia: " + title,
		Text:   extract,
		Url:    s.BaseURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
		Source: s.Name(),
	}}, nil
}

// search returns the title of the top index hit, or "" when nothing matches.
func (s *WikipediaSource) search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "3")
	params.Set("format", "json")

	var parsed wikiSearchResponse
	if err := s.getJSON(ctx, params, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Query.Search) == 0 {
		return "", nil
	}
	return parsed.Query.Search[0].Title, nil
}

func (s *WikipediaSource) extract(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exsentences", fmt.Sprintf("%d", s.Sentences))
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")

	var parsed wikiExtractResponse
	if err := s.getJSON(ctx, params, &parsed); err != nil {
		return "", err
	}
	for _, page := range parsed.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", nil
}

func (s *WikipediaSource) getJSON(ctx context.Context, params url.Values, out interface{}) error {
	endpoint := s.BaseURL + "/w/api.php?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia: status %d", resp.StatusCode)
	}
	return json.Unmarshal(body, out)
}
