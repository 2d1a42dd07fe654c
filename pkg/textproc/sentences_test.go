package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "one two three", "one two three"},
		{"tabs and newlines", "one\ttwo\n\nthree", "one two three"},
		{"leading and trailing", "  padded  ", "padded"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhitespace(tt.in))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "terminated sentences",
			in:   "First sentence. Second one! Third?",
			want: []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name: "trailing fragment kept",
			in:   "Complete sentence. trailing fragment without terminator",
			want: []string{"Complete sentence.", "trailing fragment without terminator"},
		},
		{
			name: "no terminator at all",
			in:   "just a fragment",
			want: []string{"just a fragment"},
		},
		{
			name: "ellipsis stays with its sentence",
			in:   "Wait... Done.",
			want: []string{"Wait...", "Done."},
		},
		{
			name: "internal whitespace normalized",
			in:   "Spaced   out.  Next\nline.",
			want: []string{"Spaced out.", "Next line."},
		},
		{
			name: "empty",
			in:   "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}
