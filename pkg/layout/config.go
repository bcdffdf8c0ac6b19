package layout

import "github.com/lbreuer/folium/pkg/errors"

// Default layout parameters.
const (
	DefaultBaseFontSize  = 12.0
	DefaultScaleRatio    = 1.2
	DefaultLineHeight    = 1.4
	DefaultMaxLineLength = 80
	DefaultMarginTop     = 56.0
	DefaultMarginBottom  = 56.0
	DefaultCardThreshold = 0.7
)

// Config holds the numeric layout parameters. All lengths are in points;
// MaxLineLength is in characters.
type Config struct {
	BaseFontSize  float64 `json:"baseFontSize" toml:"base_font_size"`
	ScaleRatio    float64 `json:"scaleRatio" toml:"scale_ratio"`
	LineHeight    float64 `json:"lineHeight" toml:"line_height"` // multiplier on font size
	MaxLineLength int     `json:"maxLineLength" toml:"max_line_length"`
	MarginTop     float64 `json:"marginTop" toml:"margin_top"`
	MarginBottom  float64 `json:"marginBottom" toml:"margin_bottom"`
	CardThreshold float64 `json:"cardThreshold" toml:"card_threshold"`
}

// DefaultConfig returns the standard layout parameters.
func DefaultConfig() Config {
	return Config{
		BaseFontSize:  DefaultBaseFontSize,
		ScaleRatio:    DefaultScaleRatio,
		LineHeight:    DefaultLineHeight,
		MaxLineLength: DefaultMaxLineLength,
		MarginTop:     DefaultMarginTop,
		MarginBottom:  DefaultMarginBottom,
		CardThreshold: DefaultCardThreshold,
	}
}

// Validate rejects invalid configurations before any layout work begins.
// A configuration error is a caller mistake, never a per-block failure.
func (c Config) Validate() error {
	if c.BaseFontSize <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "baseFontSize must be positive, got %g", c.BaseFontSize)
	}
	if c.ScaleRatio <= 1 {
		return errors.New(errors.ErrCodeConfiguration, "scaleRatio must be greater than 1, got %g", c.ScaleRatio)
	}
	if c.LineHeight <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "lineHeight must be positive, got %g", c.LineHeight)
	}
	if c.MaxLineLength <= 0 {
		return errors.New(errors.ErrCodeConfiguration, "maxLineLength must be positive, got %d", c.MaxLineLength)
	}
	if c.MarginTop < 0 || c.MarginBottom < 0 {
		return errors.New(errors.ErrCodeConfiguration, "margins must be non-negative, got top=%g bottom=%g", c.MarginTop, c.MarginBottom)
	}
	if c.CardThreshold < 0 || c.CardThreshold > 1 {
		return errors.New(errors.ErrCodeConfiguration, "cardThreshold %g out of range [0,1]", c.CardThreshold)
	}
	return nil
}
