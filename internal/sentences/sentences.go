// Package sentences implements the deterministic sentence guardrail applied to
// untrusted model output: sentence splitting on terminal punctuation, capping
// and rune-safe truncation.
package sentences

import (
	"strings"
	"unicode/utf8"
)

// MaxUnterminated is the hard character limit applied to text that carries no
// sentence terminator at all.
const MaxUnterminated = 500

// IsTerminator reports whether r ends a sentence.
func IsTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Count returns the number of sentence terminators in text.
func Count(text string) int {
	n := 0
	for _, r := range text {
		if IsTerminator(r) {
			n++
		}
	}
	return n
}

// Len returns the length of text in characters (runes).
func Len(text string) int {
	return utf8.RuneCountInString(text)
}

// Split scans text left to right and returns at most max sentences. Each
// sentence runs up to and including its terminator and is trimmed of
// surrounding whitespace. Scanning stops at the max-th terminator; content
// after the last collected terminator is dropped.
func Split(text string, max int) []string {
	if max <= 0 {
		return nil
	}
	var out []string
	start := 0
	for i, r := range text {
		if !IsTerminator(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		out = append(out, strings.TrimSpace(text[start:end]))
		start = end
		if len(out) == max {
			break
		}
	}
	return out
}

// Cap keeps the first max sentences of text joined by a single space. Text
// without any terminator is truncated to MaxUnterminated characters instead.
func Cap(text string, max int) string {
	if Count(text) == 0 {
		return Truncate(text, MaxUnterminated)
	}
	return strings.Join(Split(text, max), " ")
}

// Truncate returns the first n characters of text, or text itself when it is
// shorter. It never splits a multi-byte character.
func Truncate(text string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
