package rag

import (
	"context"

	"ai-research-be/internal/entity"
	"ai-research-be/pkg/llm"
	"ai-research-be/pkg/rag/prompt"
)

const (
	planTemperature = 0.2
	planTokens      = 200
)

// Planner derives a short implementation plan from an already-produced
// summary. It only runs when the orchestrator detected planning intent in
// the query.
type Planner struct {
	provider llm.LLMProvider
}

func NewPlanner(provider llm.LLMProvider) *Planner {
	return &Planner{provider: provider}
}

func (p *Planner) Plan(ctx context.Context, summary string) (*entity.Plan, error) {
	out, err := p.provider.Generate(ctx, prompt.ThreeStepPlan(summary),
		llm.WithMaxTokens(planTokens),
		llm.WithTemperature(planTemperature),
	)
	if err != nil {
		return nil, err
	}
	return &entity.Plan{Plan: out}, nil
}
