// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
// Text without a fence is returned trimmed and otherwise untouched.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = skipLanguageTag(text)
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// A stray closing fence without an opening one
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// skipLanguageTag drops a language identifier directly after an opening fence.
func skipLanguageTag(text string) string {
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		// A language identifier is short, has no spaces and is not JSON itself
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[\"") {
			return text[idx+1:]
		}
	}
	// A bare json tag glued to the payload, as in ```json{...}
	if len(text) > len("json") && strings.EqualFold(text[:len("json")], "json") {
		if rest := strings.TrimLeft(text[len("json"):], " \t"); strings.HasPrefix(rest, "{") || strings.HasPrefix(rest, "[") {
			return rest
		}
	}
	return text
}
