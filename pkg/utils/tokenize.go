package utils

import "strings"

// TokenSet lowercases the input and splits it on whitespace into a set of
// unique tokens.
func TokenSet(text string) map[string]struct{} {
	tokens := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// OverlapScore counts how many tokens the two sets share. It is the
// bag-of-words relevance score used to rank local corpus files.
func OverlapScore(a, b map[string]struct{}) int {
	// Iterate the smaller set.
	if len(b) < len(a) {
		a, b = b, a
	}
	score := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			score++
		}
	}
	return score
}

// TruncateRunes caps a string at n runes without splitting a character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
