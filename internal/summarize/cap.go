package summarize

// Length is the semantic alternative to an explicit sentence cap.
type Length string

const (
	LengthShort  Length = "SHORT"
	LengthMedium Length = "MEDIUM"
	LengthLong   Length = "LONG"
)

const (
	// DefaultCap applies when neither an explicit cap nor a length is given.
	DefaultCap = 5
	// MaxCap is the ceiling for explicit caps.
	MaxCap = 12
)

// SentenceCap maps the length to its sentence cap. ok is false for the empty
// or an unknown value.
func (l Length) SentenceCap() (n int, ok bool) {
	switch l {
	case LengthShort:
		return 2, true
	case LengthMedium:
		return 5, true
	case LengthLong:
		return 8, true
	default:
		return 0, false
	}
}

// Valid reports whether l is one of the known lengths.
func (l Length) Valid() bool {
	_, ok := l.SentenceCap()
	return ok
}

// ResolveCap picks the effective sentence cap. A positive explicit cap wins
// (bounded by MaxCap); zero or negative counts as absent. Then the length,
// then DefaultCap. The result is always in 1..MaxCap.
func ResolveCap(maxSentences *int, length Length) int {
	if maxSentences != nil && *maxSentences > 0 {
		return min(*maxSentences, MaxCap)
	}
	if n, ok := length.SentenceCap(); ok {
		return n
	}
	return DefaultCap
}
