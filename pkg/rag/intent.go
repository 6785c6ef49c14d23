package rag

import "strings"

// planningKeywords trigger the Planner. Matching is case-insensitive
// substring containment, so "How To build X" matches "how to".
var planningKeywords = []string{"plan", "action", "next step", "how to", "implement"}

// HasPlanningIntent reports whether the query asks for actionable steps.
func HasPlanningIntent(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range planningKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
