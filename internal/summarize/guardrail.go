package summarize

import (
	"strings"

	"text-summarizer/internal/sentences"
)

// extractiveSummary caps the original text and makes sure the result is
// strictly shorter than it: trailing sentences are dropped while the result
// is not shorter, and a lone sentence (or unterminated text) is cut to one
// character less than the input. shortened reports whether either cut was
// needed on top of the plain cap.
func extractiveSummary(text string, maxSentences int) (summary string, shortened bool) {
	limit := sentences.Len(text)

	parts := sentences.Split(text, maxSentences)
	if len(parts) == 0 {
		summary = strings.TrimSpace(sentences.Truncate(text, sentences.MaxUnterminated))
	} else {
		for len(parts) > 1 && sentences.Len(strings.Join(parts, " ")) >= limit {
			parts = parts[:len(parts)-1]
			shortened = true
		}
		summary = strings.Join(parts, " ")
	}

	if sentences.Len(summary) >= limit {
		summary = strings.TrimSpace(sentences.Truncate(summary, limit-1))
		shortened = true
	}
	return summary, shortened
}
