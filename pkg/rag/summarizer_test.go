package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-research-be/internal/constant"
	"ai-research-be/internal/entity"
	"ai-research-be/pkg/llm"
)

// stubProvider records every prompt and the resolved options.
type stubProvider struct {
	response string
	err      error
	prompts  []string
	opts     []llm.Options
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	var prompt string
	if len(history) > 0 {
		prompt = history[len(history)-1].Content
	}
	return s.record(prompt, options...)
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.record(prompt, options...)
}

func (s *stubProvider) record(prompt string, options ...llm.Option) (string, error) {
	resolved := llm.Options{}
	for _, o := range options {
		o(&resolved)
	}
	s.prompts = append(s.prompts, prompt)
	s.opts = append(s.opts, resolved)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestSummarizeChatMode(t *testing.T) {
	provider := &stubProvider{response: "direct answer"}
	s := NewSummarizer(provider)

	docs := []entity.Document{{Id: "d1", Title: "ignored", Text: "ignored"}}
	res, err := s.Summarize(context.Background(), "what is go", docs, "", true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != constant.RunModeChat {
		t.Errorf("mode = %q, want chat", res.Mode)
	}
	if res.Summary != "direct answer" {
		t.Errorf("summary = %q", res.Summary)
	}
	// Chat mode must not leak document content into the prompt.
	if strings.Contains(provider.prompts[0], "ignored") {
		t.Error("chat prompt contains document text")
	}
	if provider.opts[0].MaxTokens != 300 {
		t.Errorf("max tokens = %d, want 300", provider.opts[0].MaxTokens)
	}
}

func TestSummarizeRetrievalMode(t *testing.T) {
	provider := &stubProvider{response: "grounded summary"}
	s := NewSummarizer(provider)

	docs := []entity.Document{
		{Id: "d1", Title: "Doc One", Text: "first text"},
		{Id: "d2", Title: "Doc Two", Text: "second text"},
	}
	res, err := s.Summarize(context.Background(), "explain go", docs, "earlier summary", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != constant.RunModeRetrieval {
		t.Errorf("mode = %q, want retrieval", res.Mode)
	}

	prompt := provider.prompts[0]
	for _, want := range []string{"Doc One: first text", "Doc Two: second text", "Previous context: earlier summary"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if provider.opts[0].MaxTokens != 250 {
		t.Errorf("max tokens = %d, want 250", provider.opts[0].MaxTokens)
	}
	if provider.opts[0].Temperature != 0.2 {
		t.Errorf("temperature = %v, want 0.2", provider.opts[0].Temperature)
	}
}

func TestSummarizeFallbackMode(t *testing.T) {
	provider := &stubProvider{response: "best effort"}
	s := NewSummarizer(provider)

	res, err := s.Summarize(context.Background(), "explain go", nil, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Mode != constant.RunModeFallback {
		t.Errorf("mode = %q, want fallback", res.Mode)
	}
}

func TestSummarizePropagatesProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	s := NewSummarizer(provider)

	if _, err := s.Summarize(context.Background(), "q", nil, "", true); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestPlanner(t *testing.T) {
	provider := &stubProvider{response: "1. a 2. b 3. c"}
	p := NewPlanner(provider)

	plan, err := p.Plan(context.Background(), "short summary")
	if err != nil {
		t.Fatal(err)
	}
	if plan.Plan != "1. a 2. b 3. c" {
		t.Errorf("plan = %q", plan.Plan)
	}
	if !strings.Contains(provider.prompts[0], "3-step implementation plan") {
		t.Errorf("planner prompt = %q", provider.prompts[0])
	}
	if !strings.Contains(provider.prompts[0], "short summary") {
		t.Error("planner prompt missing the summary")
	}
	if provider.opts[0].MaxTokens != 200 {
		t.Errorf("max tokens = %d, want 200", provider.opts[0].MaxTokens)
	}
}
