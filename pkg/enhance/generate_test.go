package enhance

import (
	"context"
	"reflect"
	"testing"

	"github.com/lbreuer/folium/pkg/document"
)

func fixtureDoc(t *testing.T) *document.Validated {
	t.Helper()
	v, err := document.Validate(document.Document{
		Meta: document.Meta{Title: "Signal Processing Primer"},
		Blocks: []document.Block{
			{ID: "h1", Content: document.Heading{Text: "The Sampling Process", Level: 1}},
			{ID: "p1", Content: document.Paragraph{Text: "ordinary prose"}, Importance: 0.4},
			{ID: "p2", Content: document.Paragraph{Text: "a crucial formula appears here"}, Importance: 0.9},
			{ID: "h2", Content: document.Heading{Text: "Results and Discussion", Level: 2}},
		},
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return v
}

func TestGenerateGreenModern(t *testing.T) {
	v := fixtureDoc(t)

	got, err := Generate(context.Background(), v, StyleModern, SchemeGreen)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(got.Gradients) != 1 {
		t.Fatalf("gradients = %d, want 1", len(got.Gradients))
	}
	grad := got.Gradients[0]
	if grad.Direction != DirectionDiagonal {
		t.Errorf("direction = %s, want diagonal", grad.Direction)
	}
	if grad.Opacity != 0.1 {
		t.Errorf("opacity = %g, want 0.1", grad.Opacity)
	}
	if grad.Stops != RampFor(SchemeGreen) {
		t.Errorf("stops = %v, want green ramp %v", grad.Stops, RampFor(SchemeGreen))
	}

	if len(got.Shadows) != 1 {
		t.Errorf("modern style should emit a shadow, got %d", len(got.Shadows))
	}
	if len(got.Borders) != 0 {
		t.Errorf("modern style should emit no border, got %d", len(got.Borders))
	}
	if len(got.Textures) != 0 {
		t.Errorf("modern style should emit no texture, got %d", len(got.Textures))
	}
	if len(got.Watermarks) != 1 || got.Watermarks[0].Text != "Signal Processing Primer" {
		t.Errorf("watermarks = %+v", got.Watermarks)
	}
}

func TestGenerateStyleTable(t *testing.T) {
	v := fixtureDoc(t)
	tests := []struct {
		style                              DesignStyle
		gradients, borders, shadows, texts int
	}{
		{StyleAcademic, 0, 1, 0, 0},
		{StyleModern, 1, 0, 1, 0},
		{StyleMinimal, 0, 0, 0, 0},
		{StyleColorful, 1, 0, 1, 1},
		{DesignStyle("brutalist"), 0, 0, 0, 0}, // unknown style matches nothing
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := Generate(context.Background(), v, tt.style, SchemeBlue)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(got.Gradients) != tt.gradients {
				t.Errorf("gradients = %d, want %d", len(got.Gradients), tt.gradients)
			}
			if len(got.Borders) != tt.borders {
				t.Errorf("borders = %d, want %d", len(got.Borders), tt.borders)
			}
			if len(got.Shadows) != tt.shadows {
				t.Errorf("shadows = %d, want %d", len(got.Shadows), tt.shadows)
			}
			if len(got.Textures) != tt.texts {
				t.Errorf("textures = %d, want %d", len(got.Textures), tt.texts)
			}
			if len(got.Watermarks) != 1 {
				t.Errorf("watermarks = %d, want 1 for every style", len(got.Watermarks))
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	v := fixtureDoc(t)
	first, err := Generate(context.Background(), v, StyleColorful, SchemeRose)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Generate(context.Background(), v, StyleColorful, SchemeRose)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestGenerateIconsSelection(t *testing.T) {
	v := fixtureDoc(t)
	icons := generateIcons(v)

	// Headings and the high-importance paragraph get icons; p1 does not.
	wantBlocks := []string{"h1", "p2", "h2"}
	if len(icons) != len(wantBlocks) {
		t.Fatalf("icons for blocks %v, want %v", iconBlockIDs(icons), wantBlocks)
	}
	for i, id := range wantBlocks {
		if icons[i].BlockID != id {
			t.Errorf("icon %d for block %s, want %s", i, icons[i].BlockID, id)
		}
	}

	// Keyword matching picked the right symbols.
	if icons[0].Name != "process" {
		t.Errorf("h1 icon = %s, want process", icons[0].Name)
	}
	if icons[1].Name != "formula" {
		t.Errorf("p2 icon = %s, want formula", icons[1].Name)
	}
	if icons[2].Name != "result" {
		t.Errorf("h2 icon = %s, want result", icons[2].Name)
	}

	// Positions step down in generation order.
	for i, ic := range icons {
		if ic.X != iconOriginX {
			t.Errorf("icon %d X = %g, want %g", i, ic.X, iconOriginX)
		}
		if want := iconOriginY + float64(i)*iconStepY; ic.Y != want {
			t.Errorf("icon %d Y = %g, want %g", i, ic.Y, want)
		}
		if ic.Color != iconColor(i) {
			t.Errorf("icon %d color = %s, want %s", i, ic.Color, iconColor(i))
		}
	}
}

func iconBlockIDs(icons []Icon) []string {
	ids := make([]string, len(icons))
	for i, ic := range icons {
		ids[i] = ic.BlockID
	}
	return ids
}

func TestMatchIconFirstRuleWins(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"the next step of the process", "process"},
		// "case" and "result" both appear; example is listed first.
		{"an example case with a result", "example"},
		// "problem" and "solution" both appear; problem is listed first.
		{"the problem and its solution", "problem"},
		{"Data Pipelines", "data"}, // matching is case-insensitive
		{"nothing notable here", "topic"},
	}
	for _, tt := range tests {
		if got := matchIcon(tt.text); got.name != tt.want {
			t.Errorf("matchIcon(%q) = %s, want %s", tt.text, got.name, tt.want)
		}
	}
}

func TestRampForFallback(t *testing.T) {
	if got := RampFor(ColorScheme("chartreuse")); got != RampFor(SchemeBlue) {
		t.Errorf("unknown scheme = %v, want blue fallback %v", got, RampFor(SchemeBlue))
	}
}
