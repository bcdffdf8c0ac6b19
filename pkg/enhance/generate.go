package enhance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lbreuer/folium/pkg/document"
)

// Generate computes the full decorative set for a document. It is
// deterministic: identical inputs yield identical elements regardless of
// scheduling. The six category generators are independent, so they fan out
// and the results merge by concatenation into each category's slice.
func Generate(ctx context.Context, v *document.Validated, style DesignStyle, scheme ColorScheme) (Elements, error) {
	var out Elements

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Icons = generateIcons(v)
		return nil
	})
	g.Go(func() error {
		out.Gradients = generateGradients(style, scheme)
		return nil
	})
	g.Go(func() error {
		out.Borders = generateBorders(style)
		return nil
	})
	g.Go(func() error {
		out.Shadows = generateShadows(style)
		return nil
	})
	g.Go(func() error {
		out.Textures = generateTextures(style)
		return nil
	})
	g.Go(func() error {
		out.Watermarks = generateWatermarks(v)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Elements{}, err
	}
	return out, nil
}
