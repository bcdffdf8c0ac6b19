package printpdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/style"
)

func TestRenderProducesPDF(t *testing.T) {
	doc := document.Document{
		Meta:    document.Meta{Title: "Print Test", Author: "folium"},
		Outline: []document.OutlineEntry{{ID: "h", Level: 1, Title: "Opening", Weight: 0.9}},
		Blocks: []document.Block{
			{ID: "h", Content: document.Heading{Text: "Opening", Level: 1}},
			{ID: "p", Content: document.Paragraph{Text: "some body text that wraps"}},
			{ID: "key", Content: document.Paragraph{Text: "the key result"}, Importance: 0.9},
			{ID: "t", Content: document.Table{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}},
			{ID: "s", Content: document.Separator{}},
		},
	}
	v, err := document.Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	sheet := style.ResolveSheet(v)
	plan, err := layout.Layout(v, sheet, layout.DefaultConfig(), sheet.PageSize)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	elements, err := enhance.Generate(context.Background(), v, enhance.StyleModern, enhance.SchemeGreen)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out, err := New().Render(v, sheet, plan, elements, render.DefaultOptions())
	if errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Skipf("no usable system fonts: %v", err)
	}
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(8, len(out))])
	}
}

func TestWithOpacity(t *testing.T) {
	c := withOpacity("#ff0000", 0.5)
	r, _, _, a := c.RGBA()
	if a == 0 {
		t.Error("valid hex should not be transparent")
	}
	if r == 0 {
		t.Error("red channel lost")
	}

	if _, _, _, a := withOpacity("not-a-color", 0.5).RGBA(); a != 0 {
		t.Error("invalid hex should degrade to transparent")
	}
}
