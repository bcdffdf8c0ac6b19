// Package enhance generates the decorative element set for a document:
// contextual icons, gradient backgrounds, borders, shadows, textures, and a
// watermark.
//
// Generation is a pure function of (document, design style, color scheme).
// It never consults the layout plan, so it can run before, after, or
// concurrently with layout. The six category generators are mutually
// independent and run fanned out; their outputs merge by concatenation, so
// completion order never affects the result. An unmatched design style
// yields an empty set for a category, never an error.
package enhance
