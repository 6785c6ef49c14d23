package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-research-be/pkg/llm"
)

func testProvider(t *testing.T, handler http.HandlerFunc) *OpenRouterProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenRouterProvider("test-key", "test-model")
	p.BaseURL = srv.URL
	return p
}

func TestChatReturnsMessageContent(t *testing.T) {
	var gotReq chatRequest
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatal(err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	})

	out, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}},
		llm.WithMaxTokens(250), llm.WithTemperature(0.2))
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello there" {
		t.Errorf("out = %q", out)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 250 {
		t.Errorf("max_tokens = %d", gotReq.MaxTokens)
	}
	if gotReq.Temperature != 0.2 {
		t.Errorf("temperature = %v", gotReq.Temperature)
	}
}

func TestChatFallsBackToTextField(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"text":"completion style"}]}`))
	})

	out, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatal(err)
	}
	if out != "completion style" {
		t.Errorf("out = %q", out)
	}
}

func TestChatMissingAPIKey(t *testing.T) {
	called := false
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	p.APIKey = ""

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if called {
		t.Error("request was sent despite missing key")
	}
}

func TestChatUpstreamStatusError(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d", upstream.Status)
	}
}

func TestChatEmptyChoices(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	var upstream *llm.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
}

func TestGeneratePrependsSystemMessage(t *testing.T) {
	var gotReq chatRequest
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	if _, err := p.Generate(context.Background(), "summarize this"); err != nil {
		t.Fatal(err)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" {
		t.Errorf("first role = %q", gotReq.Messages[0].Role)
	}
	if gotReq.Messages[1].Content != "summarize this" {
		t.Errorf("user content = %q", gotReq.Messages[1].Content)
	}
}
