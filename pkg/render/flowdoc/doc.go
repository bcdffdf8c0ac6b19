// Package flowdoc renders a document as a flow document: a minimal but
// valid DOCX archive (OOXML wordprocessing markup inside a zip container).
//
// Flow documents have no fixed pages, so plan coordinates and the
// page-number toggle do not apply; block order, card emphasis, resolved
// styles, and annotations do. Links degrade to "text (url)" runs and notes
// to italic parentheticals, keeping the archive free of per-link
// relationship parts.
package flowdoc
