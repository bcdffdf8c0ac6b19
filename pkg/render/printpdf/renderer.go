package printpdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/style"
)

// ptToMm converts the plan's point units to canvas millimeters.
const ptToMm = 25.4 / 72.0

func mm(pt float64) float64 { return pt * ptToMm }

// Renderer emits paginated PDF.
type Renderer struct {
	fonts *fontCache
}

var _ render.Renderer = (*Renderer)(nil)

// New returns the print backend. The renderer is safe for concurrent use;
// the font cache is its only shared state.
func New() *Renderer {
	return &Renderer{fonts: newFontCache()}
}

// Render draws every page of the plan. An optional table-of-contents page
// precedes the content; footers carry page numbers when enabled. Note and
// link annotations become footnotes on their block's page; span decorations
// without a print equivalent are omitted.
func (r *Renderer) Render(v *document.Validated, sheet *style.Sheet, plan *layout.Plan, elements enhance.Elements, opts render.Options) ([]byte, error) {
	body, err := r.fonts.family(sheet.Fonts.Body)
	if err != nil {
		return nil, err
	}
	heading, err := r.fonts.family(sheet.Fonts.Heading)
	if err != nil {
		return nil, err
	}

	pageW, pageH := mm(plan.PageSize.Width), mm(plan.PageSize.Height)

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageW, pageH, nil)
	writer.SetInfo(v.Meta().Title, "", strings.Join(v.Meta().Tags, ", "), v.Meta().Author, "folium")

	pd := &pageDrawer{
		r:       r,
		v:       v,
		sheet:   sheet,
		plan:    plan,
		els:     elements,
		opts:    opts,
		body:    body,
		heading: heading,
		pageW:   pageW,
		pageH:   pageH,
	}

	first := true
	newPage := func() *canvas.Context {
		if !first {
			writer.NewPage(pageW, pageH)
		}
		first = false
		c := canvas.New(pageW, pageH)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // plan origin is top-left
		pd.canvas = c
		return ctx
	}

	if opts.IncludeTOC && len(v.Outline()) > 0 {
		ctx := newPage()
		pd.drawBackground(ctx)
		if err := pd.drawTOC(ctx); err != nil {
			return nil, err
		}
		pd.canvas.RenderTo(writer)
	}

	for page := 0; page < plan.PageCount; page++ {
		ctx := newPage()
		pd.drawBackground(ctx)
		if err := pd.drawPage(ctx, page); err != nil {
			return nil, err
		}
		pd.canvas.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "writing PDF")
	}
	return buf.Bytes(), nil
}

// pageDrawer carries the per-render state shared by the page drawing
// helpers.
type pageDrawer struct {
	r       *Renderer
	v       *document.Validated
	sheet   *style.Sheet
	plan    *layout.Plan
	els     enhance.Elements
	opts    render.Options
	body    *canvas.FontFamily
	heading *canvas.FontFamily
	pageW   float64
	pageH   float64
	canvas  *canvas.Canvas
}

func (pd *pageDrawer) face(b *document.Block, box *layout.Box) *canvas.FontFace {
	resolved := pd.sheet.Blocks[b.ID]
	family := pd.body
	fontStyle := canvas.FontRegular
	if b.Kind() == document.KindHeading {
		family = pd.heading
		fontStyle = canvas.FontBold
	}
	switch resolved.Emphasis {
	case "bold":
		fontStyle = canvas.FontBold
	case "italic":
		fontStyle |= canvas.FontItalic
	}
	return family.Face(box.FontSize, canvas.Hex(resolved.TextColor), fontStyle, canvas.FontNormal)
}

func (pd *pageDrawer) drawPage(ctx *canvas.Context, page int) error {
	footnotes := 0
	for _, box := range pd.plan.BoxesOnPage(page) {
		b, ok := pd.v.Block(box.BlockID)
		if !ok {
			continue
		}
		if box.Mode == layout.ModeCard {
			pd.drawCard(ctx, &box)
		}
		if err := pd.drawBlock(ctx, b, &box); err != nil {
			return err
		}
		if pd.opts.IncludeAnnotations && pd.opts.IncludeFootnotes {
			footnotes = pd.drawFootnotes(ctx, b, footnotes)
		}
	}
	pd.drawIconsOnPage(ctx, page)
	if pd.opts.PageNumbers {
		pd.drawPageNumber(ctx, page)
	}
	return nil
}

func (pd *pageDrawer) drawBlock(ctx *canvas.Context, b *document.Block, box *layout.Box) error {
	switch c := b.Content.(type) {
	case document.Heading, document.Paragraph, document.Quote, document.Code, document.List:
		pd.drawLines(ctx, b, box)
	case document.Table:
		pd.drawTable(ctx, c, b, box)
	case document.Image:
		return pd.drawImage(ctx, c, box)
	case document.Separator:
		pd.drawSeparator(ctx, box)
	}
	return nil
}

// drawLines places the plan's pre-wrapped lines, honoring the resolved
// alignment within the box.
func (pd *pageDrawer) drawLines(ctx *canvas.Context, b *document.Block, box *layout.Box) {
	face := pd.face(b, box)
	resolved := pd.sheet.Blocks[b.ID]

	align := canvas.Left
	anchorX := mm(box.X)
	switch resolved.Align {
	case "center":
		align = canvas.Center
		anchorX = mm(box.X + box.Width/2)
	case "right":
		align = canvas.Right
		anchorX = mm(box.X + box.Width)
	}

	lineExtent := mm(box.FontSize * pd.plan.Config.LineHeight)
	ascent := face.Metrics().Ascent
	y := mm(box.Y)
	if box.Mode == layout.ModeCard {
		y += lineExtent * 0.5
	}
	for _, line := range box.Lines {
		ctx.DrawText(anchorX, y+ascent, canvas.NewTextLine(face, line, align))
		y += lineExtent
	}
}

func (pd *pageDrawer) drawTable(ctx *canvas.Context, tbl document.Table, b *document.Block, box *layout.Box) {
	cols := len(tbl.Headers)
	if cols == 0 && len(tbl.Rows) > 0 {
		cols = len(tbl.Rows[0])
	}
	if cols == 0 {
		return
	}

	face := pd.face(b, box)
	colW := mm(box.Width) / float64(cols)
	rowH := mm(box.FontSize*pd.plan.Config.LineHeight) + 2*mm(4)
	ascent := face.Metrics().Ascent

	drawRow := func(cells []string, y float64, header bool) {
		x := mm(box.X)
		for i := 0; i < cols && i < len(cells); i++ {
			fill := canvas.White
			if header {
				fill = canvas.Hex("#f0f0f0")
			}
			ctx.SetFillColor(fill)
			ctx.SetStrokeColor(canvas.Hex("#cbd5e0"))
			ctx.SetStrokeWidth(0.2)
			ctx.DrawPath(x, y, canvas.Rectangle(colW, rowH))
			ctx.DrawText(x+mm(4), y+mm(2)+ascent, canvas.NewTextLine(face, cells[i], canvas.Left))
			x += colW
		}
	}

	y := mm(box.Y)
	if len(tbl.Headers) > 0 {
		drawRow(tbl.Headers, y, true)
		y += rowH
	}
	for _, row := range tbl.Rows {
		drawRow(row, y, false)
		y += rowH
	}
}

func (pd *pageDrawer) drawImage(ctx *canvas.Context, img document.Image, box *layout.Box) error {
	if len(img.Data) == 0 {
		// URL-only images have no bytes at render time; draw a labeled
		// placeholder frame rather than failing the page.
		ctx.SetFillColor(canvas.Hex("#f7fafc"))
		ctx.SetStrokeColor(canvas.Hex("#cbd5e0"))
		ctx.SetStrokeWidth(0.3)
		ctx.DrawPath(mm(box.X), mm(box.Y), canvas.Rectangle(mm(box.Width), mm(box.Height)))
		if img.Caption != "" {
			face := pd.body.Face(pd.plan.Config.BaseFontSize*0.85, canvas.Hex("#718096"), canvas.FontItalic, canvas.FontNormal)
			ctx.DrawText(mm(box.X+4), mm(box.Y+box.Height)-face.Metrics().Descent, canvas.NewTextLine(face, img.Caption, canvas.Left))
		}
		return nil
	}

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderBackend, err, "decoding %s image in block at %g,%g", img.MIME, box.X, box.Y)
	}
	dpmm := float64(decoded.Bounds().Dx()) / mm(box.Width)
	if dpmm <= 0 {
		dpmm = 1
	}
	ctx.DrawImage(mm(box.X), mm(box.Y), decoded, canvas.DPMM(dpmm))
	return nil
}

func (pd *pageDrawer) drawSeparator(ctx *canvas.Context, box *layout.Box) {
	ctx.SetStrokeColor(canvas.Hex(pd.sheet.Accent(0)))
	ctx.SetStrokeWidth(0.3)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(mm(box.Width), 0)
	ctx.DrawPath(mm(box.X), mm(box.Y+box.Height/2), p)
}

// drawFootnotes writes note and link annotations as numbered footnotes at
// the bottom of the block's page. Inline span styling has no faithful
// fixed-page equivalent here, so the content degrades to footnotes instead.
func (pd *pageDrawer) drawFootnotes(ctx *canvas.Context, b *document.Block, count int) int {
	face := pd.body.Face(pd.plan.Config.BaseFontSize*0.75, canvas.Hex("#4a5568"), canvas.FontRegular, canvas.FontNormal)
	for _, ann := range b.Annotations {
		var text string
		switch ann.Kind {
		case document.AnnotationNote:
			text = ann.Note
		case document.AnnotationLink:
			text = ann.URL
		default:
			continue
		}
		count++
		y := pd.pageH - mm(pd.plan.Config.MarginBottom) + float64(count)*mm(10)
		line := fmt.Sprintf("%d. %s", count, text)
		ctx.DrawText(mm(pd.plan.SideMargin), y, canvas.NewTextLine(face, line, canvas.Left))
	}
	return count
}

func (pd *pageDrawer) drawPageNumber(ctx *canvas.Context, page int) {
	face := pd.body.Face(pd.plan.Config.BaseFontSize*0.85, canvas.Hex("#718096"), canvas.FontRegular, canvas.FontNormal)
	label := fmt.Sprintf("%d / %d", page+1, pd.plan.PageCount)
	ctx.DrawText(pd.pageW/2, pd.pageH-mm(pd.plan.Config.MarginBottom)/2, canvas.NewTextLine(face, label, canvas.Center))
}

func (pd *pageDrawer) drawTOC(ctx *canvas.Context) error {
	titleFace := pd.heading.Face(pd.plan.Config.BaseFontSize*1.8, canvas.Hex(pd.sheet.Theme.TextColor), canvas.FontBold, canvas.FontNormal)
	ctx.DrawText(mm(pd.plan.SideMargin), mm(pd.plan.Config.MarginTop)+titleFace.Metrics().Ascent,
		canvas.NewTextLine(titleFace, "Contents", canvas.Left))

	y := mm(pd.plan.Config.MarginTop) + titleFace.Metrics().LineHeight + mm(12)
	for _, entry := range pd.v.Outline() {
		fontStyle := canvas.FontRegular
		if entry.Weight >= 0.7 {
			fontStyle = canvas.FontBold
		}
		face := pd.body.Face(pd.plan.Config.BaseFontSize, canvas.Hex(pd.sheet.Theme.TextColor), fontStyle, canvas.FontNormal)
		indent := mm(float64(entry.Level-1) * 14)
		ctx.DrawText(mm(pd.plan.SideMargin)+indent, y+face.Metrics().Ascent,
			canvas.NewTextLine(face, entry.Title, canvas.Left))
		y += mm(pd.plan.Config.BaseFontSize * pd.plan.Config.LineHeight * 1.2)
	}
	return nil
}
