package layout

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Lines returns a lazy, restartable sequence of wrapped lines such that no
// line exceeds max characters. Breaks happen only at whitespace; a single
// word longer than the limit occupies its own line unbroken. Explicit
// newlines in the text force a break. Ranging over the sequence twice
// yields identical lines.
func Lines(text string, max int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, para := range strings.Split(text, "\n") {
			words := strings.Fields(para)
			if len(words) == 0 {
				if !yield("") {
					return
				}
				continue
			}

			var line strings.Builder
			length := 0
			for _, word := range words {
				wlen := utf8.RuneCountInString(word)
				switch {
				case length == 0:
					line.WriteString(word)
					length = wlen
				case length+1+wlen <= max:
					line.WriteByte(' ')
					line.WriteString(word)
					length += 1 + wlen
				default:
					if !yield(line.String()) {
						return
					}
					line.Reset()
					line.WriteString(word)
					length = wlen
				}
			}
			if !yield(line.String()) {
				return
			}
		}
	}
}

// CountLines returns the number of wrapped lines without materializing them.
func CountLines(text string, max int) int {
	n := 0
	for range Lines(text, max) {
		n++
	}
	return n
}

// WrapAll collects the wrapped lines into a slice.
func WrapAll(text string, max int) []string {
	var out []string
	for line := range Lines(text, max) {
		out = append(out, line)
	}
	return out
}
