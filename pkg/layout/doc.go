// Package layout computes the paginated placement of a validated document's
// blocks.
//
// # Overview
//
// The engine walks blocks in document order and produces a [Plan]: one
// positioned [Box] per block (page index, origin, extent, placement mode)
// plus the total page count. All coordinates are in points with the origin
// at the top-left of each page.
//
// Font size follows a heading ladder — base * ratio^(6-level) for headings,
// base size for body text — so visual hierarchy is independent of theme.
// Text is wrapped to a maximum line length in characters, breaking only at
// whitespace; a single word longer than the limit occupies its own line
// unbroken.
//
// # Placement
//
// A block whose importance exceeds the configured card threshold is placed
// as an isolated card (its own inset box with surrounding whitespace);
// everything else flows in the main column. The decision is made per block
// and never looks at neighboring blocks.
//
// # Pagination
//
// Blocks are placed top to bottom between the configured margins. A block
// that would overflow the remaining page height starts a new page. A block
// taller than one full page starts a fresh page and is allowed to overflow
// past the bottom margin — blocks are never split mid-content. This is a
// deliberate policy, recorded on the box via Overflow.
//
// Layout cannot fail once the configuration is valid: every block fits on
// some page, so the engine always terminates with a finite plan.
package layout
