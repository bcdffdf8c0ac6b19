package enhance

// DesignStyle selects the decorative treatment applied to a rendered
// document. Styles outside the known set are accepted and simply match no
// decoration rules.
type DesignStyle string

// Known design styles.
const (
	StyleAcademic DesignStyle = "academic"
	StyleModern   DesignStyle = "modern"
	StyleMinimal  DesignStyle = "minimal"
	StyleColorful DesignStyle = "colorful"
)

// ColorScheme names a 3-stop gradient ramp. Unknown schemes fall back to
// the blue ramp.
type ColorScheme string

// Known color schemes.
const (
	SchemeBlue   ColorScheme = "blue"
	SchemeGreen  ColorScheme = "green"
	SchemePurple ColorScheme = "purple"
	SchemeOrange ColorScheme = "orange"
	SchemeRose   ColorScheme = "rose"
)

// GradientDirection is the axis a gradient runs along.
type GradientDirection string

// Gradient directions.
const (
	DirectionHorizontal GradientDirection = "horizontal"
	DirectionVertical   GradientDirection = "vertical"
	DirectionDiagonal   GradientDirection = "diagonal"
)

// Icon is a contextual symbol attached to a block. Position is assigned in
// generation order; color derives from the item index, so repeated runs over
// identical input reproduce the same icons.
type Icon struct {
	BlockID string  `json:"blockId"`
	Name    string  `json:"name"`
	Glyph   string  `json:"glyph"`
	Color   string  `json:"color"`
	Size    float64 `json:"size"`
	X, Y    float64 `json:"-"`
}

// Gradient is a page background ramp.
type Gradient struct {
	Scheme    ColorScheme       `json:"scheme"`
	Direction GradientDirection `json:"direction"`
	Stops     [3]string         `json:"stops"`
	Opacity   float64           `json:"opacity"`
}

// Border frames card content.
type Border struct {
	Style  string  `json:"style"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Radius float64 `json:"radius"`
}

// Shadow is a drop shadow applied beneath cards.
type Shadow struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Blur    float64 `json:"blur"`
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color"`
}

// Texture is a subtle repeating background pattern.
type Texture struct {
	Pattern string  `json:"pattern"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

// Watermark is a low-opacity rotated text mark drawn behind page content.
type Watermark struct {
	Text    string  `json:"text"`
	Opacity float64 `json:"opacity"`
	Angle   float64 `json:"angle"` // degrees, counter-clockwise
}

// Elements is the merged output of all category generators. Every category
// is a slice so the merge stays a plain concatenation; empty slices mean the
// design style matched no rule for that category.
type Elements struct {
	Icons      []Icon      `json:"icons,omitempty"`
	Gradients  []Gradient  `json:"gradients,omitempty"`
	Borders    []Border    `json:"borders,omitempty"`
	Shadows    []Shadow    `json:"shadows,omitempty"`
	Textures   []Texture   `json:"textures,omitempty"`
	Watermarks []Watermark `json:"watermarks,omitempty"`
}
