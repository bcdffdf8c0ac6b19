package pipeline

import (
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/render/flowdoc"
	"github.com/lbreuer/folium/pkg/render/markup"
	"github.com/lbreuer/folium/pkg/render/printpdf"
)

// printRenderer is shared so its font cache survives across requests.
var printRenderer = printpdf.New()

// rendererFor maps a validated format to its backend. Options validation
// guarantees the format is known.
func rendererFor(format render.Format) render.Renderer {
	switch format {
	case render.FormatMarkup:
		return markup.New()
	case render.FormatFlow:
		return flowdoc.New()
	default:
		return printRenderer
	}
}
