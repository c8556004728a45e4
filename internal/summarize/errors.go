package summarize

import "errors"

var (
	// ErrInputTooShort means the trimmed input is below MinInputChars.
	ErrInputTooShort = errors.New("input text too short to summarize")
	// ErrEmptyResponse means no usable summary text was produced.
	ErrEmptyResponse = errors.New("empty summary from LLM")
)
