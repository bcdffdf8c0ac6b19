// Package render defines the output contract shared by every backend.
//
// A Renderer consumes a validated document, its resolved style sheet, the
// computed layout plan, and the generated decoration set, and emits the
// final byte stream. Backends never re-derive layout or decorations; they
// are pure consumers. Concrete backends live in the subpackages printpdf
// (paginated PDF), markup (flowing HTML), and flowdoc (DOCX).
package render
