package layout

import (
	"fmt"
	"math"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/style"
)

const (
	// sideMargin is the fixed horizontal margin; the configurable margins
	// control only the vertical bounds that drive pagination.
	sideMargin = 48.0

	// blockGap is the base vertical gap between blocks, scaled by the
	// sheet's spacing factor.
	blockGap = 10.0

	// cardInset narrows a card relative to the main column; cardPadding is
	// the interior padding added to the card's measured content height.
	cardInset   = 16.0
	cardPadding = 12.0

	separatorHeight = 14.0
	tableCellPad    = 4.0

	// imageAspect is the assumed height/width ratio when an image carries
	// no intrinsic dimensions.
	imageAspect = 0.75
)

// Layout computes the paginated placement of every block. The configuration
// is validated up front; after that the computation cannot fail and always
// produces a plan with at least one page.
func Layout(v *document.Validated, sheet *style.Sheet, cfg Config, pageSize document.PageSize) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := PageExtent(pageSize)
	contentWidth := size.Width - 2*sideMargin
	usableHeight := size.Height - cfg.MarginTop - cfg.MarginBottom
	gap := blockGap * sheet.SpacingFactor()

	plan := &Plan{
		PageSize:   size,
		PageCount:  1,
		Config:     cfg,
		SideMargin: sideMargin,
		Boxes:      make([]Box, 0, len(v.Blocks())),
	}

	page := 0
	cursorY := cfg.MarginTop
	pageEmpty := true

	for i := range v.Blocks() {
		b := &v.Blocks()[i]
		resolved := sheet.Blocks[b.ID]

		box := measure(b, resolved, cfg, contentWidth)

		// Card-versus-flow is decided per block, independent of neighbors.
		if b.Importance > cfg.CardThreshold {
			box.Mode = ModeCard
			box.X = sideMargin + cardInset
			box.Width = contentWidth - 2*cardInset
			box.Height += 2 * cardPadding
		} else {
			box.Mode = ModeFlow
			box.X = sideMargin
			box.Width = contentWidth
		}

		switch {
		case box.Height > usableHeight:
			// Taller than a full page: start fresh and overflow. Never split.
			if !pageEmpty {
				page++
			}
			cursorY = cfg.MarginTop
			box.Overflow = true
		case cursorY+box.Height > size.Height-cfg.MarginBottom:
			page++
			cursorY = cfg.MarginTop
		}

		box.Page = page
		box.Y = cursorY
		cursorY += box.Height + gap
		pageEmpty = false
		if box.Overflow {
			// The overflowing block consumed its page entirely; any later
			// block starts fresh.
			page++
			cursorY = cfg.MarginTop
			pageEmpty = true
		}

		plan.Boxes = append(plan.Boxes, box)
	}

	// The page counter can point past the last placed block (an overflowing
	// final block advances it). Count populated pages only, so no backend
	// ever emits a blank trailing page.
	if n := len(plan.Boxes); n > 0 {
		plan.PageCount = plan.Boxes[n-1].Page + 1
	}

	return plan, nil
}

// FontSizeFor returns the ladder size for a block: base * ratio^(6-level)
// for headings (level 1 is largest), the base size for everything else.
func FontSizeFor(b *document.Block, cfg Config) float64 {
	if h, ok := b.Content.(document.Heading); ok {
		return cfg.BaseFontSize * math.Pow(cfg.ScaleRatio, float64(document.MaxHeadingLevel-h.Level))
	}
	return cfg.BaseFontSize
}

// sizeFactor maps the resolved size bucket to a font-size multiplier.
func sizeFactor(size string) float64 {
	switch size {
	case "small":
		return 0.85
	case "large":
		return 1.15
	default:
		return 1.0
	}
}

// measure computes the unplaced box for a block: effective font size,
// wrapped lines where applicable, and the type-specific vertical extent.
func measure(b *document.Block, resolved style.Resolved, cfg Config, width float64) Box {
	fontSize := FontSizeFor(b, cfg) * sizeFactor(resolved.Size)
	lineExtent := fontSize * cfg.LineHeight

	box := Box{
		BlockID:  b.ID,
		FontSize: fontSize,
	}

	switch c := b.Content.(type) {
	case document.Heading, document.Paragraph, document.Quote, document.Code:
		box.Lines = WrapAll(b.Text(), cfg.MaxLineLength)
		box.Height = float64(len(box.Lines)) * lineExtent
	case document.List:
		for i, item := range c.Items {
			prefix := "• "
			if c.Ordered {
				prefix = fmt.Sprintf("%d. ", i+1)
			}
			box.Lines = append(box.Lines, WrapAll(prefix+item, cfg.MaxLineLength)...)
		}
		box.Height = float64(len(box.Lines)) * lineExtent
	case document.Table:
		rows := len(c.Rows)
		if len(c.Headers) > 0 {
			rows++
		}
		box.Height = float64(rows) * (lineExtent + 2*tableCellPad)
	case document.Image:
		box.Height = width * imageAspect
		if c.Caption != "" {
			box.Height += lineExtent
		}
	case document.Separator:
		box.Height = separatorHeight
	}

	if box.Height <= 0 {
		box.Height = lineExtent
	}
	return box
}
