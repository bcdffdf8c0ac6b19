package style

import "github.com/lbreuer/folium/pkg/document"

// =============================================================================
// Themes - Complete Default Bundles
// =============================================================================

// Theme is a named bundle of complete style defaults. Every field carries a
// usable value so that style resolution never has to fail.
type Theme struct {
	Name      string
	Palette   []string // ordered; first entry is the primary accent
	Fonts     document.FontPair
	Spacing   document.Spacing
	PageSize  document.PageSize
	TextColor string
	PageColor string
	Align     string // default block alignment
}

// DefaultTheme is used when a document declares no theme.
const DefaultTheme = document.ThemeMinimal

// themes is the closed theme table. Names must stay in sync with
// document.KnownThemes; resolve_test asserts the two sets match.
var themes = map[string]Theme{
	document.ThemeAcademic: {
		Name:      document.ThemeAcademic,
		Palette:   []string{"#1a365d", "#2c5282", "#718096", "#e2e8f0"},
		Fonts:     document.FontPair{Heading: "Georgia", Body: "Times New Roman"},
		Spacing:   document.SpacingNormal,
		PageSize:  document.PageA4,
		TextColor: "#1a202c",
		PageColor: "#ffffff",
		Align:     "left",
	},
	document.ThemeModern: {
		Name:      document.ThemeModern,
		Palette:   []string{"#2b6cb0", "#4299e1", "#90cdf4", "#ebf8ff"},
		Fonts:     document.FontPair{Heading: "Helvetica", Body: "Helvetica"},
		Spacing:   document.SpacingRelaxed,
		PageSize:  document.PageA4,
		TextColor: "#2d3748",
		PageColor: "#ffffff",
		Align:     "left",
	},
	document.ThemeMinimal: {
		Name:      document.ThemeMinimal,
		Palette:   []string{"#2d3748", "#4a5568", "#a0aec0", "#f7fafc"},
		Fonts:     document.FontPair{Heading: "Helvetica", Body: "Helvetica"},
		Spacing:   document.SpacingCompact,
		PageSize:  document.PageA4,
		TextColor: "#1a202c",
		PageColor: "#ffffff",
		Align:     "left",
	},
	document.ThemeColorful: {
		Name:      document.ThemeColorful,
		Palette:   []string{"#d53f8c", "#805ad5", "#3182ce", "#38a169", "#dd6b20"},
		Fonts:     document.FontPair{Heading: "Verdana", Body: "Verdana"},
		Spacing:   document.SpacingRelaxed,
		PageSize:  document.PageA4,
		TextColor: "#2d3748",
		PageColor: "#fffaf0",
		Align:     "left",
	},
}

// ThemeByName returns the named theme, falling back to [DefaultTheme] for ""
// and for unknown names. Validation already rejects unknown names on the
// document path; the fallback keeps resolution total for direct callers.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns the theme names in a fixed display order.
func ThemeNames() []string {
	return []string{
		document.ThemeAcademic,
		document.ThemeModern,
		document.ThemeMinimal,
		document.ThemeColorful,
	}
}
