package summarize

import (
	"strings"
	"testing"

	"text-summarizer/internal/sentences"
)

func TestExtractiveSummary(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		max           int
		want          string
		wantShortened bool
	}{
		{
			name: "plain cap is already shorter",
			text: "First sentence here. Second sentence here. Third sentence here.",
			max:  1,
			want: "First sentence here.",
		},
		{
			name:          "drops sentences until shorter",
			text:          "Alpha beta gamma delta. Epsilon zeta eta theta.",
			max:           5,
			want:          "Alpha beta gamma delta.",
			wantShortened: true,
		},
		{
			name:          "single sentence is cut by one character",
			text:          "This single sentence is the whole input.",
			max:           3,
			want:          "This single sentence is the whole input",
			wantShortened: true,
		},
		{
			name:          "unterminated text is cut by one character",
			text:          "no punctuation in this input at all",
			max:           2,
			want:          "no punctuation in this input at al",
			wantShortened: true,
		},
		{
			name:          "joining can lengthen packed sentences",
			text:          "One.Two.Three.Four.Five.Six.",
			max:           12,
			want:          "One. Two. Three. Four.",
			wantShortened: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shortened := extractiveSummary(tt.text, tt.max)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if shortened != tt.wantShortened {
				t.Errorf("expected shortened=%v, got %v", tt.wantShortened, shortened)
			}
			if sentences.Len(got) >= sentences.Len(tt.text) {
				t.Errorf("summary %q is not shorter than input", got)
			}
		})
	}
}

func TestExtractiveSummaryLongUnterminatedText(t *testing.T) {
	text := strings.Repeat("x", 800)
	got, shortened := extractiveSummary(text, 3)
	if got != text[:sentences.MaxUnterminated] {
		t.Fatalf("expected %d characters, got %d", sentences.MaxUnterminated, len(got))
	}
	if shortened {
		t.Error("expected plain truncation, not a strictness cut")
	}
}
