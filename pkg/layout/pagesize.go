package layout

import "github.com/lbreuer/folium/pkg/document"

// Size is a page extent in points.
type Size struct {
	Width  float64
	Height float64
}

// pagePresets maps the supported page formats to their extent in points.
var pagePresets = map[document.PageSize]Size{
	document.PageA4:     {Width: 595.28, Height: 841.89},
	document.PageA5:     {Width: 419.53, Height: 595.28},
	document.PageLetter: {Width: 612, Height: 792},
	document.PageLegal:  {Width: 612, Height: 1008},
}

// PageExtent returns the point dimensions for a page size, defaulting to A4
// for the zero value.
func PageExtent(ps document.PageSize) Size {
	if s, ok := pagePresets[ps]; ok {
		return s
	}
	return pagePresets[document.PageA4]
}
