package markup

import (
	"bytes"
	"fmt"
	"html"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/style"
)

// writeHead emits the <head> with the stylesheet derived from the resolved
// sheet and the decoration set. The template selector switches the outer
// column treatment; unknown names get the default treatment.
func writeHead(buf *bytes.Buffer, v *document.Validated, sheet *style.Sheet, elements enhance.Elements, template string) {
	buf.WriteString("<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", html.EscapeString(v.Meta().Title))
	buf.WriteString("<style>\n")

	maxWidth := "46rem"
	if template == "wide" {
		maxWidth = "64rem"
	}

	fmt.Fprintf(buf, "body{font-family:%s;color:%s;background:%s;max-width:%s;margin:0 auto;padding:2rem;%s}\n",
		cssFont(sheet.Fonts.Body), sheet.Theme.TextColor, sheet.Theme.PageColor, maxWidth, bodyBackground(elements))
	fmt.Fprintf(buf, "h1,h2,h3,h4,h5,h6{font-family:%s}\n", cssFont(sheet.Fonts.Heading))
	fmt.Fprintf(buf, "a{color:%s}\n", sheet.Accent(0))

	buf.WriteString(".watermark{position:fixed;top:40%;left:20%;font-size:4rem;pointer-events:none;z-index:-1}\n")
	buf.WriteString(".toc ul{list-style:none;padding:0}\n.toc-major{font-weight:bold}\n")
	buf.WriteString("blockquote{border-left:3px solid " + sheet.Accent(0) + ";margin-left:0;padding-left:1rem}\n")
	buf.WriteString("pre{background:#f7fafc;padding:0.75rem;overflow-x:auto}\n")
	buf.WriteString("table{border-collapse:collapse}\nth,td{border:1px solid #cbd5e0;padding:0.35rem 0.6rem}\n")
	buf.WriteString("img{max-width:100%}\n.footnotes{border-top:1px solid #cbd5e0;margin-top:2rem;font-size:0.85rem}\n")
	writeCardCSS(buf, elements)

	buf.WriteString("</style>\n</head>\n")
}

// cssFont quotes a font name and appends a generic fallback family.
func cssFont(name string) string {
	if name == "" {
		name = "Georgia"
	}
	return fmt.Sprintf("'%s',serif", name)
}

// bodyBackground converts the first gradient, if any, into a CSS gradient
// layered over the page color.
func bodyBackground(elements enhance.Elements) string {
	if len(elements.Gradients) == 0 {
		return ""
	}
	g := elements.Gradients[0]
	var dir string
	switch g.Direction {
	case enhance.DirectionHorizontal:
		dir = "to right"
	case enhance.DirectionVertical:
		dir = "to bottom"
	default:
		dir = "135deg"
	}
	return fmt.Sprintf("background-image:linear-gradient(%s,%s,%s,%s);", dir, g.Stops[0], g.Stops[1], g.Stops[2])
}

// writeCardCSS styles card sections from the border and shadow decorations.
func writeCardCSS(buf *bytes.Buffer, elements enhance.Elements) {
	buf.WriteString(".card{padding:0.75rem 1rem;margin:1rem 0")
	for _, b := range elements.Borders {
		fmt.Fprintf(buf, ";border:%gpx %s %s;border-radius:%gpx", b.Width, b.Style, b.Color, b.Radius)
	}
	for _, s := range elements.Shadows {
		fmt.Fprintf(buf, ";box-shadow:%gpx %gpx %gpx rgba(0,0,0,%g)", s.OffsetX, s.OffsetY, s.Blur, s.Opacity)
	}
	buf.WriteString("}\n")
}

// blockStyleAttr builds the inline style attribute for a block's resolved
// style. An all-default resolution yields no attribute at all.
func blockStyleAttr(r style.Resolved) string {
	var buf bytes.Buffer
	if r.Align != "" && r.Align != "left" {
		fmt.Fprintf(&buf, "text-align:%s;", r.Align)
	}
	if r.Background != "" {
		fmt.Fprintf(&buf, "background:%s;", r.Background)
	}
	if r.Border {
		buf.WriteString("border:1px solid currentColor;")
	}
	switch r.Emphasis {
	case "bold":
		buf.WriteString("font-weight:bold;")
	case "italic":
		buf.WriteString("font-style:italic;")
	}
	switch r.Size {
	case "small":
		buf.WriteString("font-size:0.85em;")
	case "large":
		buf.WriteString("font-size:1.15em;")
	}
	if buf.Len() == 0 {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, buf.String())
}
