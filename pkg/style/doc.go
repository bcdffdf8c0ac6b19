// Package style resolves the effective visual style for every block of a
// validated document.
//
// Resolution layers three sources, highest priority last:
//
//  1. Theme defaults — every theme is complete, so resolution is total
//  2. Document-level declaration — palette, font pair, spacing, page size
//  3. Per-block style hints — alignment, background, border, emphasis, size
//
// Resolving the same inputs twice yields identical results: there is no
// randomness and no clock access anywhere in this package.
package style
