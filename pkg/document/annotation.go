package document

// AnnotationKind discriminates the closed set of annotation variants.
type AnnotationKind string

// Annotation kinds.
const (
	AnnotationHighlight     AnnotationKind = "highlight"
	AnnotationUnderline     AnnotationKind = "underline"
	AnnotationStrikethrough AnnotationKind = "strikethrough"
	AnnotationNote          AnnotationKind = "note"
	AnnotationLink          AnnotationKind = "link"
)

// Span is a half-open character offset pair [Start, End) into the owning
// block's text. Validation enforces 0 <= Start < End <= len(text).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Annotation marks a span of a block's text with a decoration or reference.
// Color, Note, and URL are used depending on Kind:
//
//   - highlight: Color (optional)
//   - note: Note (required)
//   - link: URL (required)
//   - underline, strikethrough: no extra fields
type Annotation struct {
	Kind  AnnotationKind `json:"kind"`
	Span  Span           `json:"span"`
	Color string         `json:"color,omitempty"`
	Note  string         `json:"note,omitempty"`
	URL   string         `json:"url,omitempty"`
}

// knownAnnotationKinds is the closed set accepted by validation.
var knownAnnotationKinds = map[AnnotationKind]bool{
	AnnotationHighlight:     true,
	AnnotationUnderline:     true,
	AnnotationStrikethrough: true,
	AnnotationNote:          true,
	AnnotationLink:          true,
}
