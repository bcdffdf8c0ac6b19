package layout

// PlacementMode tells a renderer how a block sits on the page.
type PlacementMode string

// Placement modes.
const (
	// ModeCard isolates the block in its own bounded box with surrounding
	// whitespace. Chosen when importance exceeds the card threshold.
	ModeCard PlacementMode = "card"

	// ModeFlow lets the block share the main column with its neighbors.
	ModeFlow PlacementMode = "flow"
)

// Box is the computed placement of one block. Coordinates are in points
// with the origin at the top-left of the page. Boxes reference blocks by id
// rather than embedding them, so a plan never owns document content.
type Box struct {
	BlockID string
	Page    int // zero-based page index
	X, Y    float64
	Width   float64
	Height  float64
	Mode    PlacementMode

	// FontSize is the effective size from the heading ladder, including the
	// resolved size-bucket multiplier.
	FontSize float64

	// Lines holds the wrapped text lines for text-bearing blocks (and the
	// prefixed items of list blocks), so renderers never re-derive wrapping.
	Lines []string

	// Overflow marks a block taller than one full page: it starts a fresh
	// page and runs past the bottom margin rather than being split.
	Overflow bool
}

// Plan is the computed layout for a whole document: every block's box plus
// the page geometry needed to draw them.
type Plan struct {
	PageSize   Size
	PageCount  int
	Boxes      []Box
	Config     Config
	SideMargin float64
}

// BoxFor returns the box for a block id, or nil when the id is unknown.
func (p *Plan) BoxFor(blockID string) *Box {
	for i := range p.Boxes {
		if p.Boxes[i].BlockID == blockID {
			return &p.Boxes[i]
		}
	}
	return nil
}

// BoxesOnPage returns the boxes placed on the given page, in placement order.
func (p *Plan) BoxesOnPage(page int) []Box {
	var out []Box
	for _, b := range p.Boxes {
		if b.Page == page {
			out = append(out, b)
		}
	}
	return out
}
