package layout

import (
	"strings"
	"testing"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/style"
)

func mustValidate(t *testing.T, doc document.Document) (*document.Validated, *style.Sheet) {
	t.Helper()
	v, err := document.Validate(doc)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return v, style.ResolveSheet(v)
}

func TestLayoutCardThreshold(t *testing.T) {
	doc := document.Document{
		Meta: document.Meta{Title: "Thresholds"},
		Blocks: []document.Block{
			{ID: "b1", Content: document.Paragraph{Text: "key insight"}, Importance: 0.9},
			{ID: "b2", Content: document.Paragraph{Text: "supporting detail"}, Importance: 0.3},
			{ID: "b3", Content: document.Paragraph{Text: "exactly at the line"}, Importance: 0.7},
		},
	}
	v, sheet := mustValidate(t, doc)

	plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	tests := []struct {
		id   string
		want PlacementMode
	}{
		{"b1", ModeCard}, // 0.9 > 0.7
		{"b2", ModeFlow}, // 0.3 <= 0.7
		{"b3", ModeFlow}, // equal to the threshold stays in flow
	}
	for _, tt := range tests {
		box := plan.BoxFor(tt.id)
		if box == nil {
			t.Fatalf("no box for %s", tt.id)
		}
		if box.Mode != tt.want {
			t.Errorf("block %s: mode %s, want %s", tt.id, box.Mode, tt.want)
		}
	}

	card, flow := plan.BoxFor("b1"), plan.BoxFor("b2")
	if card.Width >= flow.Width {
		t.Errorf("card width %g should be narrower than flow width %g", card.Width, flow.Width)
	}
	if card.X <= flow.X {
		t.Errorf("card X %g should be inset relative to flow X %g", card.X, flow.X)
	}
}

func TestLayoutHeadingLadder(t *testing.T) {
	doc := document.Document{
		Meta: document.Meta{Title: "Ladder"},
		Blocks: []document.Block{
			{ID: "h1", Content: document.Heading{Text: "Top", Level: 1}},
			{ID: "h2", Content: document.Heading{Text: "Mid", Level: 2}},
			{ID: "h6", Content: document.Heading{Text: "Low", Level: 6}},
			{ID: "p", Content: document.Paragraph{Text: "body"}},
		},
	}
	v, sheet := mustValidate(t, doc)
	cfg := DefaultConfig()

	plan, err := Layout(v, sheet, cfg, document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	h1 := plan.BoxFor("h1").FontSize
	h2 := plan.BoxFor("h2").FontSize
	h6 := plan.BoxFor("h6").FontSize
	body := plan.BoxFor("p").FontSize

	if !(h1 > h2 && h2 > h6) {
		t.Errorf("ladder not monotonic: h1=%g h2=%g h6=%g", h1, h2, h6)
	}
	if h6 != cfg.BaseFontSize {
		t.Errorf("level 6 heading = %g, want base %g", h6, cfg.BaseFontSize)
	}
	if body != cfg.BaseFontSize {
		t.Errorf("body = %g, want base %g", body, cfg.BaseFontSize)
	}
}

func TestLayoutPagination(t *testing.T) {
	long := strings.Repeat("a paragraph of steady prose that fills the column line after line ", 20)
	blocks := make([]document.Block, 0, 12)
	for i := 0; i < 12; i++ {
		blocks = append(blocks, document.Block{
			ID:      string(rune('a' + i)),
			Content: document.Paragraph{Text: long},
		})
	}
	doc := document.Document{Meta: document.Meta{Title: "Long"}, Blocks: blocks}
	v, sheet := mustValidate(t, doc)

	plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if plan.PageCount < 2 {
		t.Fatalf("expected multiple pages, got %d", plan.PageCount)
	}
	// Pages are filled in order and every box lands on a real page.
	prev := 0
	for _, box := range plan.Boxes {
		if box.Page < prev {
			t.Errorf("block %s placed on page %d after page %d", box.BlockID, box.Page, prev)
		}
		if box.Page >= plan.PageCount {
			t.Errorf("block %s on page %d beyond PageCount %d", box.BlockID, box.Page, plan.PageCount)
		}
		prev = box.Page
	}
	if got := plan.BoxesOnPage(0); len(got) == 0 {
		t.Error("first page is empty")
	}
}

func TestLayoutOversizeBlockOverflows(t *testing.T) {
	huge := strings.Repeat("word ", 4000)
	doc := document.Document{
		Meta: document.Meta{Title: "Overflow"},
		Blocks: []document.Block{
			{ID: "lead", Content: document.Paragraph{Text: "short intro"}},
			{ID: "giant", Content: document.Paragraph{Text: huge}},
			{ID: "tail", Content: document.Paragraph{Text: "short outro"}},
		},
	}
	v, sheet := mustValidate(t, doc)

	plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	giant := plan.BoxFor("giant")
	if !giant.Overflow {
		t.Fatal("oversize block not marked as overflow")
	}
	if giant.Y != DefaultMarginTop {
		t.Errorf("overflow block should start a fresh page at the top margin, Y=%g", giant.Y)
	}
	lead, tail := plan.BoxFor("lead"), plan.BoxFor("tail")
	if giant.Page <= lead.Page {
		t.Errorf("overflow block shares page %d with preceding content", giant.Page)
	}
	if tail.Page <= giant.Page {
		t.Errorf("content after an overflow block must start a new page: tail on %d, giant on %d", tail.Page, giant.Page)
	}
	if want := tail.Page + 1; plan.PageCount != want {
		t.Errorf("PageCount = %d, want %d (last populated page + 1)", plan.PageCount, want)
	}
}

func TestLayoutTrailingOverflowLeavesNoBlankPage(t *testing.T) {
	huge := strings.Repeat("word ", 4000)
	cases := []struct {
		name   string
		blocks []document.Block
	}{
		{"only block overflows", []document.Block{
			{ID: "giant", Content: document.Paragraph{Text: huge}},
		}},
		{"last block overflows", []document.Block{
			{ID: "lead", Content: document.Paragraph{Text: "short intro"}},
			{ID: "giant", Content: document.Paragraph{Text: huge}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := document.Document{Meta: document.Meta{Title: "Trailing"}, Blocks: tc.blocks}
			v, sheet := mustValidate(t, doc)

			plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
			if err != nil {
				t.Fatalf("Layout: %v", err)
			}

			last := plan.Boxes[len(plan.Boxes)-1]
			if !last.Overflow {
				t.Fatal("final block should overflow")
			}
			if plan.PageCount != last.Page+1 {
				t.Errorf("PageCount = %d, want %d: every page must carry content", plan.PageCount, last.Page+1)
			}
		})
	}
}

func TestLayoutEmptyDocument(t *testing.T) {
	doc := document.Document{Meta: document.Meta{Title: "Empty"}}
	v, sheet := mustValidate(t, doc)

	plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if plan.PageCount != 1 {
		t.Errorf("empty document should still yield one page, got %d", plan.PageCount)
	}
	if len(plan.Boxes) != 0 {
		t.Errorf("expected no boxes, got %d", len(plan.Boxes))
	}
}

func TestLayoutRejectsBadConfig(t *testing.T) {
	doc := document.Document{
		Meta:   document.Meta{Title: "Config"},
		Blocks: []document.Block{{ID: "b", Content: document.Paragraph{Text: "x"}}},
	}
	v, sheet := mustValidate(t, doc)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero base font", func(c *Config) { c.BaseFontSize = 0 }},
		{"ratio at one", func(c *Config) { c.ScaleRatio = 1 }},
		{"negative line height", func(c *Config) { c.LineHeight = -1 }},
		{"zero line length", func(c *Config) { c.MaxLineLength = 0 }},
		{"negative margin", func(c *Config) { c.MarginTop = -1 }},
		{"threshold above one", func(c *Config) { c.CardThreshold = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := Layout(v, sheet, cfg, document.PageA4)
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !errors.Is(err, errors.ErrCodeConfiguration) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeConfiguration)
			}
		})
	}
}

func TestLayoutListAndSeparator(t *testing.T) {
	doc := document.Document{
		Meta: document.Meta{Title: "Mixed"},
		Blocks: []document.Block{
			{ID: "ol", Content: document.List{Ordered: true, Items: []string{"first", "second"}}},
			{ID: "ul", Content: document.List{Items: []string{"only"}}},
			{ID: "sep", Content: document.Separator{}},
		},
	}
	v, sheet := mustValidate(t, doc)

	plan, err := Layout(v, sheet, DefaultConfig(), document.PageA4)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	ol := plan.BoxFor("ol")
	if len(ol.Lines) != 2 || !strings.HasPrefix(ol.Lines[0], "1. ") || !strings.HasPrefix(ol.Lines[1], "2. ") {
		t.Errorf("ordered list lines = %q", ol.Lines)
	}
	ul := plan.BoxFor("ul")
	if len(ul.Lines) != 1 || !strings.HasPrefix(ul.Lines[0], "• ") {
		t.Errorf("unordered list lines = %q", ul.Lines)
	}
	if sep := plan.BoxFor("sep"); sep.Height <= 0 {
		t.Errorf("separator height = %g", sep.Height)
	}
}
