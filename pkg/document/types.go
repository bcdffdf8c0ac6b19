package document

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// DefaultLanguage is applied when DocumentMeta.Language is unset.
const DefaultLanguage = "en"

// DefaultImportance is applied when a block omits its importance value.
const DefaultImportance = 0.5

// Outline heading levels are constrained to this inclusive range.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// SourceKind tags the provenance of document content.
type SourceKind string

// Source kinds.
const (
	SourcePDF   SourceKind = "pdf"
	SourceText  SourceKind = "text"
	SourceImage SourceKind = "image"
	SourceURL   SourceKind = "url"
)

// Spacing buckets for vertical rhythm.
type Spacing string

// Spacing presets.
const (
	SpacingCompact Spacing = "compact"
	SpacingNormal  Spacing = "normal"
	SpacingRelaxed Spacing = "relaxed"
)

// PageSize names a supported fixed page format.
type PageSize string

// Page sizes.
const (
	PageA4     PageSize = "A4"
	PageA5     PageSize = "A5"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// Theme names form a closed set; the style package carries the complete
// defaults for each. An empty theme resolves to [ThemeMinimal].
const (
	ThemeAcademic = "academic"
	ThemeModern   = "modern"
	ThemeMinimal  = "minimal"
	ThemeColorful = "colorful"
)

// KnownThemes is the closed set of theme names accepted by validation.
var KnownThemes = map[string]bool{
	ThemeAcademic: true,
	ThemeModern:   true,
	ThemeMinimal:  true,
	ThemeColorful: true,
}

// =============================================================================
// Document - Root of the Content Model
// =============================================================================

// Document is the root content model for one rendering request. It owns its
// metadata, outline, blocks, and style declaration; nothing in the pipeline
// mutates it after validation.
type Document struct {
	Meta    Meta           `json:"meta"`
	Outline []OutlineEntry `json:"outline,omitempty"`
	Blocks  []Block        `json:"blocks"`
	Styles  Styles         `json:"styles"`
}

// Meta holds document metadata. Title is the only required field; Language
// defaults to [DefaultLanguage] during validation.
type Meta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author,omitempty"`
	Date     string   `json:"date,omitempty"`
	Sources  []Source `json:"sources,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Language string   `json:"language,omitempty"`
}

// Source records where a piece of content came from. It is provenance only
// and never affects rendering.
type Source struct {
	Kind      SourceKind `json:"kind"`
	Locator   string     `json:"locator"`
	Page      int        `json:"page,omitempty"`      // page number for pdf sources
	Timestamp string     `json:"timestamp,omitempty"` // capture time for url/image sources
}

// OutlineEntry is one row of the document outline (table of contents).
// Weight in [0,1] expresses relative prominence for TOC emphasis.
type OutlineEntry struct {
	ID     string  `json:"id"`
	Level  int     `json:"level"` // 1 (largest) through 6
	Title  string  `json:"title"`
	Weight float64 `json:"weight"`
}

// =============================================================================
// Styles - Document-level Style Declaration
// =============================================================================

// FontPair names the heading and body font families.
type FontPair struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

// Styles declares the document-level styling choices. Unset fields inherit
// from the selected theme during style resolution; a nil Palette means
// "inherit", while an explicitly empty one is a schema violation.
type Styles struct {
	Theme    string   `json:"theme,omitempty"`
	Palette  []string `json:"palette,omitempty"` // ordered hex color values
	Fonts    FontPair `json:"fonts,omitempty"`
	Spacing  Spacing  `json:"spacing,omitempty"`
	PageSize PageSize `json:"pageSize,omitempty"`
}

// StyleHints are optional per-block style overrides. Empty fields mean
// "inherit from the document/theme layer".
type StyleHints struct {
	Align      string `json:"align,omitempty"`      // left, center, right
	Background string `json:"background,omitempty"` // hex color
	Border     bool   `json:"border,omitempty"`
	Emphasis   string `json:"emphasis,omitempty"` // bold, italic
	Size       string `json:"size,omitempty"`     // small, normal, large
}
