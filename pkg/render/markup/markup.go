package markup

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/style"
)

// Renderer emits a self-contained HTML page.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns the markup backend.
func New() *Renderer { return &Renderer{} }

// Render writes the document as HTML. Blocks follow plan order; page
// coordinates do not apply to flowing markup, but card placement, resolved
// styles, decorations, and the content toggles all do. Page numbers have no
// meaning without fixed pages, so that toggle is a no-op here.
func (r *Renderer) Render(v *document.Validated, sheet *style.Sheet, plan *layout.Plan, elements enhance.Elements, opts render.Options) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&buf, `<html lang="%s">`+"\n", html.EscapeString(v.Meta().Language))
	writeHead(&buf, v, sheet, elements, opts.Template)
	buf.WriteString("<body>\n")

	for _, wm := range elements.Watermarks {
		fmt.Fprintf(&buf, `<div class="watermark" style="opacity:%.2f;transform:rotate(%.0fdeg)">%s</div>`+"\n",
			wm.Opacity, wm.Angle, html.EscapeString(wm.Text))
	}

	fmt.Fprintf(&buf, "<header><h1>%s</h1>", html.EscapeString(v.Meta().Title))
	if v.Meta().Author != "" {
		fmt.Fprintf(&buf, `<p class="byline">%s</p>`, html.EscapeString(v.Meta().Author))
	}
	buf.WriteString("</header>\n")

	if opts.IncludeTOC && len(v.Outline()) > 0 {
		writeTOC(&buf, v.Outline())
	}

	icons := iconsByBlock(elements)
	var notes []footnote

	buf.WriteString("<main>\n")
	for _, box := range plan.Boxes {
		b, ok := v.Block(box.BlockID)
		if !ok {
			continue
		}
		notes = writeBlock(&buf, b, &box, sheet, icons[b.ID], opts, notes)
	}
	buf.WriteString("</main>\n")

	if opts.IncludeFootnotes && len(notes) > 0 {
		writeFootnotes(&buf, notes)
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

func iconsByBlock(elements enhance.Elements) map[string]*enhance.Icon {
	m := make(map[string]*enhance.Icon, len(elements.Icons))
	for i := range elements.Icons {
		m[elements.Icons[i].BlockID] = &elements.Icons[i]
	}
	return m
}

func writeBlock(buf *bytes.Buffer, b *document.Block, box *layout.Box, sheet *style.Sheet, icon *enhance.Icon, opts render.Options, notes []footnote) []footnote {
	resolved := sheet.Blocks[b.ID]

	if box.Mode == layout.ModeCard {
		fmt.Fprintf(buf, `<section class="card" id="card-%s">`+"\n", html.EscapeString(b.ID))
	}

	inline := blockStyleAttr(resolved)
	anns := b.Annotations
	if !opts.IncludeAnnotations {
		anns = nil
	}

	switch c := b.Content.(type) {
	case document.Heading:
		fmt.Fprintf(buf, `<h%d id="%s"%s>`, c.Level, html.EscapeString(b.ID), inline)
		if icon != nil {
			fmt.Fprintf(buf, `<span class="icon" style="color:%s">%s</span> `, icon.Color, icon.Glyph)
		}
		notes = append(notes, writeAnnotated(buf, c.Text, anns, opts.IncludeFootnotes, len(notes))...)
		fmt.Fprintf(buf, "</h%d>\n", c.Level)
	case document.Paragraph:
		fmt.Fprintf(buf, "<p%s>", inline)
		if icon != nil {
			fmt.Fprintf(buf, `<span class="icon" style="color:%s">%s</span> `, icon.Color, icon.Glyph)
		}
		notes = append(notes, writeAnnotated(buf, c.Text, anns, opts.IncludeFootnotes, len(notes))...)
		buf.WriteString("</p>\n")
	case document.List:
		tag := "ul"
		if c.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(buf, "<%s%s>\n", tag, inline)
		for _, item := range c.Items {
			fmt.Fprintf(buf, "<li>%s</li>\n", html.EscapeString(item))
		}
		fmt.Fprintf(buf, "</%s>\n", tag)
	case document.Quote:
		fmt.Fprintf(buf, "<blockquote%s>", inline)
		notes = append(notes, writeAnnotated(buf, c.Text, anns, opts.IncludeFootnotes, len(notes))...)
		buf.WriteString("</blockquote>\n")
	case document.Code:
		lang := ""
		if c.Language != "" {
			lang = fmt.Sprintf(` class="language-%s"`, html.EscapeString(c.Language))
		}
		fmt.Fprintf(buf, "<pre%s><code%s>%s</code></pre>\n", inline, lang, html.EscapeString(c.Text))
	case document.Image:
		writeImage(buf, c, inline)
	case document.Table:
		writeTable(buf, c, inline)
	case document.Separator:
		buf.WriteString("<hr>\n")
	}

	if box.Mode == layout.ModeCard {
		buf.WriteString("</section>\n")
	}
	return notes
}

func writeImage(buf *bytes.Buffer, img document.Image, inline string) {
	src := img.URL
	if src == "" && len(img.Data) > 0 {
		src = fmt.Sprintf("data:%s;base64,%s", img.MIME, base64.StdEncoding.EncodeToString(img.Data))
	}
	buf.WriteString("<figure>\n")
	fmt.Fprintf(buf, `<img src="%s" alt="%s"%s>`+"\n", html.EscapeString(src), html.EscapeString(img.Caption), inline)
	if img.Caption != "" {
		fmt.Fprintf(buf, "<figcaption>%s</figcaption>\n", html.EscapeString(img.Caption))
	}
	buf.WriteString("</figure>\n")
}

func writeTable(buf *bytes.Buffer, tbl document.Table, inline string) {
	fmt.Fprintf(buf, "<table%s>\n", inline)
	if len(tbl.Headers) > 0 {
		buf.WriteString("<thead><tr>")
		for _, h := range tbl.Headers {
			fmt.Fprintf(buf, "<th>%s</th>", html.EscapeString(h))
		}
		buf.WriteString("</tr></thead>\n")
	}
	buf.WriteString("<tbody>\n")
	for _, row := range tbl.Rows {
		buf.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(buf, "<td>%s</td>", html.EscapeString(cell))
		}
		buf.WriteString("</tr>\n")
	}
	buf.WriteString("</tbody>\n</table>\n")
}

func writeTOC(buf *bytes.Buffer, outline []document.OutlineEntry) {
	buf.WriteString(`<nav class="toc"><h2>Contents</h2><ul>` + "\n")
	for _, entry := range outline {
		class := ""
		if entry.Weight >= 0.7 {
			class = ` class="toc-major"`
		}
		fmt.Fprintf(buf, `<li%s style="margin-left:%dem"><a href="#%s">%s</a></li>`+"\n",
			class, entry.Level-1, html.EscapeString(entry.ID), html.EscapeString(entry.Title))
	}
	buf.WriteString("</ul></nav>\n")
}

func writeFootnotes(buf *bytes.Buffer, notes []footnote) {
	buf.WriteString(`<footer class="footnotes"><ol>` + "\n")
	for _, n := range notes {
		fmt.Fprintf(buf, `<li id="fn%d">%s <a href="#fnref%d">↩</a></li>`+"\n", n.number, html.EscapeString(n.text), n.number)
	}
	buf.WriteString("</ol></footer>\n")
}
