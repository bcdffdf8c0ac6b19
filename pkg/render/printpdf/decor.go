package printpdf

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/canvas"

	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/layout"
)

// withOpacity parses a hex color and applies an alpha for low-opacity
// decoration fills. Bad hex degrades to transparent rather than failing the
// page; validation already rejects malformed document colors.
func withOpacity(hex string, opacity float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return canvas.Transparent
	}
	return canvas.RGBA(c.R, c.G, c.B, opacity)
}

// drawBackground paints the page-wide decorations: gradient, texture, and
// watermark. Everything here sits behind the content.
func (pd *pageDrawer) drawBackground(ctx *canvas.Context) {
	for _, g := range pd.els.Gradients {
		pd.drawGradient(ctx, g)
	}
	for _, t := range pd.els.Textures {
		pd.drawTexture(ctx, t)
	}
	for _, w := range pd.els.Watermarks {
		pd.drawWatermark(ctx, w)
	}
}

// drawGradient approximates the 3-stop ramp as three full-bleed bands along
// the gradient axis. The diagonal direction uses vertical bands; PDF output
// keeps the banded look rather than interpolating.
func (pd *pageDrawer) drawGradient(ctx *canvas.Context, g enhance.Gradient) {
	ctx.SetStrokeColor(canvas.Transparent)
	for i, stop := range g.Stops {
		ctx.SetFillColor(withOpacity(stop, g.Opacity))
		switch g.Direction {
		case enhance.DirectionHorizontal:
			w := pd.pageW / 3
			ctx.DrawPath(float64(i)*w, 0, canvas.Rectangle(w, pd.pageH))
		default: // vertical and diagonal
			h := pd.pageH / 3
			ctx.DrawPath(0, float64(i)*h, canvas.Rectangle(pd.pageW, h))
		}
	}
}

func (pd *pageDrawer) drawTexture(ctx *canvas.Context, t enhance.Texture) {
	if t.Pattern != "dots" {
		return // unsupported patterns are omitted, not an error
	}
	ctx.SetFillColor(withOpacity(t.Color, t.Opacity))
	ctx.SetStrokeColor(canvas.Transparent)
	const step = 8.0
	for y := step; y < pd.pageH; y += step {
		for x := step; x < pd.pageW; x += step {
			ctx.DrawPath(x, y, canvas.Circle(0.5))
		}
	}
}

func (pd *pageDrawer) drawWatermark(ctx *canvas.Context, w enhance.Watermark) {
	if w.Text == "" {
		return
	}
	face := pd.heading.Face(pd.plan.Config.BaseFontSize*3.5, withOpacity(pd.sheet.Theme.TextColor, w.Opacity), canvas.FontBold, canvas.FontNormal)
	ctx.Push()
	ctx.ComposeView(canvas.Identity.Translate(pd.pageW/2, pd.pageH/2).Rotate(w.Angle))
	ctx.DrawText(0, 0, canvas.NewTextLine(face, w.Text, canvas.Center))
	ctx.Pop()
}

// drawCard paints a card block's backdrop: shadow first, then the card
// surface with any border treatment.
func (pd *pageDrawer) drawCard(ctx *canvas.Context, box *layout.Box) {
	x, y := mm(box.X-6), mm(box.Y-4)
	w, h := mm(box.Width+12), mm(box.Height+8)

	for _, s := range pd.els.Shadows {
		ctx.SetFillColor(withOpacity(s.Color, s.Opacity))
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(x+mm(s.OffsetX), y+mm(s.OffsetY), canvas.Rectangle(w, h))
	}

	ctx.SetFillColor(canvas.Hex(pd.sheet.Theme.PageColor))
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetStrokeWidth(0)
	surface := canvas.Rectangle(w, h)
	for _, b := range pd.els.Borders {
		ctx.SetStrokeColor(canvas.Hex(b.Color))
		ctx.SetStrokeWidth(mm(b.Width))
		surface = canvas.RoundedRectangle(w, h, mm(b.Radius))
	}
	ctx.DrawPath(x, y, surface)
}

// drawIconsOnPage draws each icon at its generated position, on the page
// holding the block it belongs to.
func (pd *pageDrawer) drawIconsOnPage(ctx *canvas.Context, page int) {
	for _, icon := range pd.els.Icons {
		box := pd.plan.BoxFor(icon.BlockID)
		if box == nil || box.Page != page {
			continue
		}
		face := pd.body.Face(icon.Size, canvas.Hex(icon.Color), canvas.FontRegular, canvas.FontNormal)
		ctx.DrawText(mm(icon.X), mm(icon.Y), canvas.NewTextLine(face, icon.Glyph, canvas.Left))
	}
}
