package prompt

import (
	"fmt"
	"strings"

	"ai-research-be/internal/entity"
)

// DirectAnswer builds the chat-style prompt used when no documents ground
// the answer. Prior context, when present, is prefixed so the model keeps
// a one-step memory of the conversation.
func DirectAnswer(query, context string) string {
	var b strings.Builder
	writeContext(&b, context)
	b.WriteString("You are a helpful assistant. Answer the user's question concisely and clearly.\n\n")
	b.WriteString(fmt.Sprintf("User question: %s\n\n", query))
	b.WriteString("If you're uncertain, say so and suggest where to verify.")
	return b.String()
}

// DocumentSummary builds the retrieval-augmented prompt: every document's
// title and text is inlined, and the model is asked for a short summary
// plus an embedded 3-item plan.
func DocumentSummary(query string, docs []entity.Document, context string) string {
	joined := make([]string, len(docs))
	for i, d := range docs {
		joined[i] = fmt.Sprintf("%s: %s", d.Title, d.Text)
	}

	var b strings.Builder
	writeContext(&b, context)
	b.WriteString(fmt.Sprintf("Summarize the following documents concisely for the user who asked: '%s'\n\n", query))
	b.WriteString(fmt.Sprintf("Documents:\n%s\n\n", strings.Join(joined, "\n\n")))
	b.WriteString("Provide a short (2-3 sentence) summary, followed by a 3-item actionable plan. ")
	b.WriteString("Mark uncertainties if facts are unclear.\n\n")
	return b.String()
}

// ThreeStepPlan asks for a fixed-shape implementation plan derived from an
// existing summary.
func ThreeStepPlan(summary string) string {
	var b strings.Builder
	b.WriteString("Given the short summary below, produce a concise 3-step implementation plan (each step 10-25 words).\n\n")
	b.WriteString(fmt.Sprintf("Summary:\n%s\n\nPlan:", summary))
	return b.String()
}

func writeContext(b *strings.Builder, context string) {
	if context == "" {
		return
	}
	b.WriteString(fmt.Sprintf("Previous context: %s\n\n", context))
}
