package enhance

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lbreuer/folium/pkg/document"
)

const (
	iconSize     = 16.0
	iconOriginX  = 24.0
	iconOriginY  = 40.0
	iconStepY    = 28.0
	iconHueStep  = 47 // coprime with 360, walks the full wheel
	iconMinScore = 0.7
)

// iconRule maps content keywords to a symbol. Rules are evaluated in order
// and the first match wins; later rules act as fallbacks for earlier ones,
// so the order of this list is load-bearing.
type iconRule struct {
	name     string
	glyph    string
	keywords []string
}

var iconRules = []iconRule{
	{name: "process", glyph: "⚙", keywords: []string{"process", "step"}},
	{name: "data", glyph: "▤", keywords: []string{"data", "information"}},
	{name: "theory", glyph: "✦", keywords: []string{"theory", "concept"}},
	{name: "formula", glyph: "∑", keywords: []string{"formula", "equation"}},
	{name: "example", glyph: "❖", keywords: []string{"example", "case"}},
	{name: "result", glyph: "✓", keywords: []string{"result", "outcome"}},
	{name: "problem", glyph: "⚠", keywords: []string{"problem", "issue"}},
	{name: "solution", glyph: "★", keywords: []string{"solution", "answer"}},
}

var defaultIcon = iconRule{name: "topic", glyph: "●"}

// matchIcon returns the first rule whose keyword appears in the text.
func matchIcon(text string) iconRule {
	lower := strings.ToLower(text)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule
			}
		}
	}
	return defaultIcon
}

// iconColor derives a reproducible color from the item index by stepping
// around the hue wheel at fixed saturation and lightness.
func iconColor(i int) string {
	return colorful.Hsl(float64((i*iconHueStep)%360), 0.65, 0.55).Hex()
}

// generateIcons emits one icon per key-concept block: every heading, plus
// any block whose importance marks it as a key concept.
func generateIcons(v *document.Validated) []Icon {
	var icons []Icon
	for i := range v.Blocks() {
		b := &v.Blocks()[i]
		if b.Kind() != document.KindHeading && b.Importance <= iconMinScore {
			continue
		}
		text := b.Text()
		if text == "" {
			continue
		}
		rule := matchIcon(text)
		n := len(icons)
		icons = append(icons, Icon{
			BlockID: b.ID,
			Name:    rule.name,
			Glyph:   rule.glyph,
			Color:   iconColor(n),
			Size:    iconSize,
			X:       iconOriginX,
			Y:       iconOriginY + float64(n)*iconStepY,
		})
	}
	return icons
}
