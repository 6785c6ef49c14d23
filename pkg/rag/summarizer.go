package rag

import (
	"context"

	"ai-research-be/internal/constant"
	"ai-research-be/internal/entity"
	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/rag/prompt"
)

// Generation budgets per branch. Low temperature keeps the output stable.
const (
	summaryTemperature    = 0.2
	directAnswerTokens    = 300
	documentSummaryTokens = 250
)

// SummarizeResult carries the model text verbatim plus the resolved run
// mode ("chat" | "retrieval" | "fallback").
type SummarizeResult struct {
	Summary string
	Mode    string
}

// Summarizer turns a query, a document set and the session's prior summary
// into a single model call.
type Summarizer struct {
	provider llm.LLMProvider
}

func NewSummarizer(provider llm.LLMProvider) *Summarizer {
	return &Summarizer{provider: provider}
}

// Summarize picks one of three prompt branches:
//   - chatMode: direct answer, documents ignored, mode "chat".
//   - documents present: retrieval-augmented summary, mode "retrieval".
//   - no documents: direct answer, mode "fallback" so the caller can tell
//     "nothing found" apart from "chat was requested".
func (s *Summarizer) Summarize(ctx context.Context, query string, docs []entity.Document, priorContext string, chatMode bool) (*SummarizeResult, error) {
	if chatMode {
		answer, err := s.provider.Generate(ctx, prompt.DirectAnswer(query, priorContext),
			llm.WithMaxTokens(directAnswerTokens),
			llm.WithTemperature(summaryTemperature),
		)
		if err != nil {
			return nil, err
		}
		return &SummarizeResult{Summary: answer, Mode: constant.RunModeChat}, nil
	}

	if len(docs) > 0 {
		summary, err := s.provider.Generate(ctx, prompt.DocumentSummary(query, docs, priorContext),
			llm.WithMaxTokens(documentSummaryTokens),
			llm.WithTemperature(summaryTemperature),
		)
		if err != nil {
			return nil, err
		}
		return &SummarizeResult{Summary: summary, Mode: constant.RunModeRetrieval}, nil
	}

	answer, err := s.provider.Generate(ctx, prompt.DirectAnswer(query, priorContext),
		llm.WithMaxTokens(directAnswerTokens),
		llm.WithTemperature(summaryTemperature),
	)
	if err != nil {
		return nil, err
	}
	return &SummarizeResult{Summary: answer, Mode: constant.RunModeFallback}, nil
}
