package markup

import (
	"bytes"
	"fmt"
	"html"
	"sort"

	"github.com/lbreuer/folium/pkg/document"
)

// footnote is a deferred note or link target collected while writing
// annotated text and emitted at the end of the page.
type footnote struct {
	number int
	text   string
}

// writeAnnotated writes block text with its annotation spans wrapped in
// inline elements. Spans are applied in start order; a span overlapping an
// earlier one is skipped rather than producing malformed nesting. Note
// annotations defer their content to the returned footnotes when footnotes
// are enabled, otherwise they degrade to a tooltip.
func writeAnnotated(buf *bytes.Buffer, text string, anns []document.Annotation, footnotes bool, nextNote int) []footnote {
	sorted := make([]document.Annotation, len(anns))
	copy(sorted, anns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Span.Start < sorted[j].Span.Start })

	var notes []footnote
	pos := 0
	for _, ann := range sorted {
		if ann.Span.Start < pos || ann.Span.End > len(text) {
			continue
		}
		buf.WriteString(html.EscapeString(text[pos:ann.Span.Start]))
		segment := html.EscapeString(text[ann.Span.Start:ann.Span.End])

		switch ann.Kind {
		case document.AnnotationHighlight:
			if ann.Color != "" {
				fmt.Fprintf(buf, `<mark style="background:%s">%s</mark>`, html.EscapeString(ann.Color), segment)
			} else {
				fmt.Fprintf(buf, "<mark>%s</mark>", segment)
			}
		case document.AnnotationUnderline:
			fmt.Fprintf(buf, "<u>%s</u>", segment)
		case document.AnnotationStrikethrough:
			fmt.Fprintf(buf, "<s>%s</s>", segment)
		case document.AnnotationLink:
			fmt.Fprintf(buf, `<a href="%s">%s</a>`, html.EscapeString(ann.URL), segment)
		case document.AnnotationNote:
			if footnotes {
				n := nextNote + len(notes) + 1
				notes = append(notes, footnote{number: n, text: ann.Note})
				fmt.Fprintf(buf, `%s<sup><a href="#fn%d" id="fnref%d">%d</a></sup>`, segment, n, n, n)
			} else {
				fmt.Fprintf(buf, `<span title="%s">%s</span>`, html.EscapeString(ann.Note), segment)
			}
		default:
			buf.WriteString(segment)
		}
		pos = ann.Span.End
	}
	buf.WriteString(html.EscapeString(text[pos:]))
	return notes
}
