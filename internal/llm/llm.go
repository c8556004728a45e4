package llm

import (
	"context"
	"fmt"
)

// Gateway is the single LLM call the summarizer depends on. Implementations
// must be safe for concurrent use.
type Gateway interface {
	// Generate sends prompt to the model and returns its raw text output.
	// maxSentences is an advisory hint the model may ignore; values <= 0
	// mean no hint.
	Generate(ctx context.Context, prompt string, maxSentences int) (string, error)
}

// ProviderError is a failure reported by, or while talking to, an LLM
// provider: bad credentials, quota, malformed request, outage or timeout.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// sentenceHint is the instruction passed alongside the prompt when a hint is set.
func sentenceHint(maxSentences int) string {
	return fmt.Sprintf("You write concise summaries. Respond with at most %d sentences.", maxSentences)
}
