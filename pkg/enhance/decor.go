package enhance

import "github.com/lbreuer/folium/pkg/document"

// generateBorders frames cards for the classic academic treatment.
func generateBorders(style DesignStyle) []Border {
	if style != StyleAcademic {
		return nil
	}
	return []Border{{
		Style:  "solid",
		Color:  "#1a365d",
		Width:  1.5,
		Radius: 8,
	}}
}

// generateShadows adds depth under cards for the contemporary styles.
func generateShadows(style DesignStyle) []Shadow {
	if style != StyleModern && style != StyleColorful {
		return nil
	}
	return []Shadow{{
		OffsetX: 2,
		OffsetY: 3,
		Blur:    6,
		Opacity: 0.25,
		Color:   "#000000",
	}}
}

// generateTextures emits the subtle dotted background of the colorful style.
func generateTextures(style DesignStyle) []Texture {
	if style != StyleColorful {
		return nil
	}
	return []Texture{{
		Pattern: "dots",
		Color:   "#718096",
		Opacity: 0.05,
	}}
}

// generateWatermarks emits the constant low-opacity rotated title mark.
// Every style carries it.
func generateWatermarks(v *document.Validated) []Watermark {
	return []Watermark{{
		Text:    v.Meta().Title,
		Opacity: 0.04,
		Angle:   -30,
	}}
}
