// Package printpdf renders a document onto fixed-size PDF pages via
// github.com/tdewolff/canvas.
//
// The plan's point coordinates convert to canvas millimeters at the
// boundary; the coordinate system is flipped so the plan's top-left origin
// holds. Missing fonts substitute down a generic fallback chain; inline
// span decorations the page medium cannot express degrade to footnotes or
// are omitted, never garbled.
package printpdf
