package llm

import (
	"context"
	"errors"
	"fmt"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// ErrMissingAPIKey signals that the provider credential was never
// configured. It surfaces before any network call is made.
var ErrMissingAPIKey = errors.New("llm: api key not configured")

// UpstreamError is returned when the remote LLM service answers with a
// non-success status or an unrecognized payload. It is propagated to the
// caller unchanged; a run that hits it persists nothing.
type UpstreamError struct {
	Provider string
	Status   int
	Reason   string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("llm: %s returned status %d: %s", e.Provider, e.Status, e.Reason)
	}
	return fmt.Sprintf("llm: %s: %s", e.Provider, e.Reason)
}
