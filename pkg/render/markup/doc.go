// Package markup renders a document as a single self-contained HTML page.
//
// Blocks are emitted in plan order as flowing markup; card-mode blocks
// become bounded <section> cards, decorations become CSS, and annotations
// become inline spans. Text content survives a round trip: extracting the
// visible text recovers the blocks in their original order.
package markup
