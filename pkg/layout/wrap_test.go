package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLinesRespectsLimit(t *testing.T) {
	// ~500 characters of prose wrapped at 70.
	text := strings.TrimSpace(strings.Repeat("the quick brown fox jumps over the lazy dog near the river bank ", 8))
	if utf8.RuneCountInString(text) < 400 {
		t.Fatalf("fixture too short: %d runes", utf8.RuneCountInString(text))
	}

	var lines []string
	for line := range Lines(text, 70) {
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n > 70 {
			t.Errorf("line %d has %d runes, want <= 70: %q", i, n, line)
		}
	}

	// Round-trip: joining on whitespace recovers the original words.
	if got := strings.Join(strings.Fields(strings.Join(lines, " ")), " "); got != text {
		t.Errorf("wrapped text does not round-trip")
	}
}

func TestLinesTable(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "fits on one line",
			text: "hello world",
			max:  20,
			want: []string{"hello world"},
		},
		{
			name: "breaks at whitespace",
			text: "alpha beta gamma",
			max:  10,
			want: []string{"alpha beta", "gamma"},
		},
		{
			name: "oversize word own line",
			text: "a pneumonoultramicroscopic b",
			max:  10,
			want: []string{"a", "pneumonoultramicroscopic", "b"},
		},
		{
			name: "explicit newline forces break",
			text: "one\ntwo",
			max:  80,
			want: []string{"one", "two"},
		},
		{
			name: "blank paragraph yields empty line",
			text: "one\n\ntwo",
			max:  80,
			want: []string{"one", "", "two"},
		},
		{
			name: "empty text",
			text: "",
			max:  80,
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAll(tt.text, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinesRestartable(t *testing.T) {
	seq := Lines("alpha beta gamma delta epsilon", 12)
	first := make([]string, 0, 4)
	for line := range seq {
		first = append(first, line)
	}
	second := make([]string, 0, 4)
	for line := range seq {
		second = append(second, line)
	}
	if len(first) != len(second) {
		t.Fatalf("second pass yielded %d lines, first %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between passes: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestCountLines(t *testing.T) {
	text := "alpha beta gamma delta"
	if got, want := CountLines(text, 11), len(WrapAll(text, 11)); got != want {
		t.Errorf("CountLines = %d, want %d", got, want)
	}
}
