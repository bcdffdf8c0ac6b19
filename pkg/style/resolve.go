package style

import "github.com/lbreuer/folium/pkg/document"

// =============================================================================
// Resolved - Effective Per-Block Style
// =============================================================================

// Resolved is the fully-resolved style for a single block. Every field holds
// a concrete value; nothing downstream needs to consult a theme again.
type Resolved struct {
	Align      string // left, center, right
	Background string // hex color; "" means transparent
	Border     bool
	Emphasis   string // "", bold, italic
	Size       string // small, normal, large
	TextColor  string // hex color
}

// Sheet is the resolved style set for one document: the document-wide
// choices plus the effective style of every block, keyed by block id.
type Sheet struct {
	Theme    Theme
	Palette  []string
	Fonts    document.FontPair
	Spacing  document.Spacing
	PageSize document.PageSize
	Blocks   map[string]Resolved
}

// SpacingFactor converts the sheet's spacing bucket to a vertical rhythm
// multiplier applied to inter-block gaps.
func (s *Sheet) SpacingFactor() float64 {
	switch s.Spacing {
	case document.SpacingCompact:
		return 0.85
	case document.SpacingRelaxed:
		return 1.25
	default:
		return 1.0
	}
}

// Accent returns the palette color at the given index, cycling when the
// index exceeds the palette length.
func (s *Sheet) Accent(i int) string {
	if len(s.Palette) == 0 {
		return "#2d3748"
	}
	return s.Palette[i%len(s.Palette)]
}

// =============================================================================
// Resolution
// =============================================================================

// Resolve merges the theme selected by styles, the document-level
// declaration, and the per-block hints into one effective style. It is a
// total function: every theme carries complete defaults, so there is nothing
// to fail on. hints may be nil.
func Resolve(styles document.Styles, hints *document.StyleHints) Resolved {
	theme := ThemeByName(styles.Theme)

	out := Resolved{
		Align:     theme.Align,
		TextColor: theme.TextColor,
		Size:      "normal",
	}

	if hints != nil {
		if hints.Align != "" {
			out.Align = hints.Align
		}
		if hints.Background != "" {
			out.Background = hints.Background
		}
		if hints.Border {
			out.Border = true
		}
		if hints.Emphasis != "" {
			out.Emphasis = hints.Emphasis
		}
		if hints.Size != "" {
			out.Size = hints.Size
		}
	}
	return out
}

// ResolveSheet resolves the document-wide style choices and every block of a
// validated document. Document-level fields override the theme; block hints
// override both.
func ResolveSheet(v *document.Validated) *Sheet {
	styles := v.Styles()
	theme := ThemeByName(styles.Theme)

	sheet := &Sheet{
		Theme:    theme,
		Palette:  theme.Palette,
		Fonts:    theme.Fonts,
		Spacing:  theme.Spacing,
		PageSize: theme.PageSize,
		Blocks:   make(map[string]Resolved, len(v.Blocks())),
	}

	if len(styles.Palette) > 0 {
		sheet.Palette = styles.Palette
	}
	if styles.Fonts.Heading != "" {
		sheet.Fonts.Heading = styles.Fonts.Heading
	}
	if styles.Fonts.Body != "" {
		sheet.Fonts.Body = styles.Fonts.Body
	}
	if styles.Spacing != "" {
		sheet.Spacing = styles.Spacing
	}
	if styles.PageSize != "" {
		sheet.PageSize = styles.PageSize
	}

	for _, b := range v.Blocks() {
		sheet.Blocks[b.ID] = Resolve(styles, b.Hints)
	}
	return sheet
}
