package render

import (
	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/style"
)

// Renderer turns a fully prepared document into output bytes. Implementations
// must place each block at the position (or flow order) the plan dictates,
// draw decorations at their specified positions and opacities, and honor the
// Options toggles by omitting the corresponding content entirely when off.
// Errors carry the RENDER_BACKEND code and name the responsible block when
// attributable.
type Renderer interface {
	Render(v *document.Validated, sheet *style.Sheet, plan *layout.Plan, elements enhance.Elements, opts Options) ([]byte, error)
}
