package summarize

import (
	"fmt"
	"strings"
)

// buildPrompt composes the directive sent to the model.
func buildPrompt(text string, maxSentences int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize the following text in at most %d sentences.\n", maxSentences)
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- Use no more than %d sentences.\n", maxSentences)
	b.WriteString("- Do not add facts that are not in the text.\n")
	b.WriteString("- Do not expand on the text or rephrase it extensively.\n")
	b.WriteString("- Be concise; the summary must be shorter than the text.\n")
	b.WriteString("\nText:\n")
	b.WriteString(text)
	return b.String()
}
