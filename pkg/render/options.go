package render

import (
	"strings"

	"github.com/lbreuer/folium/pkg/errors"
)

// Format selects the output backend.
type Format string

// Supported output formats.
const (
	// FormatPrint paginates onto fixed-size pages and emits PDF.
	FormatPrint Format = "print"

	// FormatMarkup emits flowing HTML.
	FormatMarkup Format = "markup"

	// FormatFlow emits a flow document (DOCX).
	FormatFlow Format = "flow"
)

// ParseFormat normalizes a user-supplied format name, accepting the common
// file-type aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "print", "pdf":
		return FormatPrint, nil
	case "markup", "html":
		return FormatMarkup, nil
	case "flow", "docx":
		return FormatFlow, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want print, markup, or flow)", s)
	}
}

// Extension returns the conventional file extension for a format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkup:
		return ".html"
	case FormatFlow:
		return ".docx"
	default:
		return ".pdf"
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkup:
		return "text/html; charset=utf-8"
	case FormatFlow:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/pdf"
	}
}

// Options controls a single render. The toggles omit their content entirely
// when false; backends never emit a partial table of contents or stray
// annotation markers.
type Options struct {
	Format             Format `json:"format" toml:"format"`
	Template           string `json:"template,omitempty" toml:"template"`
	IncludeAnnotations bool   `json:"includeAnnotations" toml:"include_annotations"`
	IncludeTOC         bool   `json:"includeTOC" toml:"include_toc"`
	IncludeFootnotes   bool   `json:"includeFootnotes" toml:"include_footnotes"`
	PageNumbers        bool   `json:"pageNumbers" toml:"page_numbers"`
}

// DefaultOptions returns the standard render settings: print output with
// all content toggles on.
func DefaultOptions() Options {
	return Options{
		Format:             FormatPrint,
		IncludeAnnotations: true,
		IncludeTOC:         true,
		IncludeFootnotes:   true,
		PageNumbers:        true,
	}
}

// Validate checks that the format names a real backend.
func (o Options) Validate() error {
	switch o.Format {
	case FormatPrint, FormatMarkup, FormatFlow:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q (want print, markup, or flow)", o.Format)
	}
}
