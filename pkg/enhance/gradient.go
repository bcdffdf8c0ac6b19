package enhance

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// colorRamps is the closed table of 3-stop gradient ramps, light to dark.
// Unknown scheme names fall back to SchemeBlue.
var colorRamps = map[ColorScheme][3]string{
	SchemeBlue:   {"#ebf8ff", "#63b3ed", "#2b6cb0"},
	SchemeGreen:  {"#f0fff4", "#68d391", "#2f855a"},
	SchemePurple: {"#faf5ff", "#b794f4", "#6b46c1"},
	SchemeOrange: {"#fffaf0", "#f6ad55", "#c05621"},
	SchemeRose:   {"#fff5f7", "#f687b3", "#b83280"},
}

func init() {
	// The ramp table is program data; a malformed stop is a programmer
	// error, caught once at startup.
	for scheme, ramp := range colorRamps {
		for _, stop := range ramp {
			if _, err := colorful.Hex(stop); err != nil {
				panic(fmt.Sprintf("enhance: bad gradient stop %q in scheme %q: %v", stop, scheme, err))
			}
		}
	}
	if _, ok := colorRamps[SchemeBlue]; !ok {
		panic("enhance: fallback scheme missing from ramp table")
	}
}

// RampFor returns the 3-stop ramp for a scheme, falling back to blue.
func RampFor(scheme ColorScheme) [3]string {
	if ramp, ok := colorRamps[scheme]; ok {
		return ramp
	}
	return colorRamps[SchemeBlue]
}

// SchemeNames returns the known scheme names in a fixed order.
func SchemeNames() []ColorScheme {
	return []ColorScheme{SchemeBlue, SchemeGreen, SchemePurple, SchemeOrange, SchemeRose}
}

// generateGradients emits the page background ramp. Only modern and colorful
// designs carry a gradient; every other style leaves the background plain.
func generateGradients(style DesignStyle, scheme ColorScheme) []Gradient {
	switch style {
	case StyleModern:
		return []Gradient{{
			Scheme:    scheme,
			Direction: DirectionDiagonal,
			Stops:     RampFor(scheme),
			Opacity:   0.1,
		}}
	case StyleColorful:
		return []Gradient{{
			Scheme:    scheme,
			Direction: DirectionHorizontal,
			Stops:     RampFor(scheme),
			Opacity:   0.15,
		}}
	default:
		return nil
	}
}
