package document

import (
	"fmt"
	"regexp"

	"github.com/lbreuer/folium/pkg/errors"
)

// hexColorRegex matches 3-, 6-, and 8-digit hex color values.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// knownSourceKinds is the closed set of provenance tags.
var knownSourceKinds = map[SourceKind]bool{
	SourcePDF:   true,
	SourceText:  true,
	SourceImage: true,
	SourceURL:   true,
}

// knownSpacings and knownPageSizes bound the document-level style enums.
// Empty means "inherit from theme" and is checked separately.
var (
	knownSpacings = map[Spacing]bool{
		SpacingCompact: true,
		SpacingNormal:  true,
		SpacingRelaxed: true,
	}
	knownPageSizes = map[PageSize]bool{
		PageA4:     true,
		PageA5:     true,
		PageLetter: true,
		PageLegal:  true,
	}
)

// Validated wraps a Document that passed every schema check. Downstream
// stages accept only *Validated, so an unchecked document can never reach
// layout or rendering. Callers must not mutate the document after validation.
type Validated struct {
	doc Document
}

// Document returns the validated document.
func (v *Validated) Document() Document { return v.doc }

// Meta returns the validated metadata with defaults applied.
func (v *Validated) Meta() Meta { return v.doc.Meta }

// Outline returns the ordered outline entries.
func (v *Validated) Outline() []OutlineEntry { return v.doc.Outline }

// Blocks returns the ordered content blocks.
func (v *Validated) Blocks() []Block { return v.doc.Blocks }

// Styles returns the document-level style declaration.
func (v *Validated) Styles() Styles { return v.doc.Styles }

// Block looks up a block by id. The second return reports whether it exists.
func (v *Validated) Block(id string) (*Block, bool) {
	for i := range v.doc.Blocks {
		if v.doc.Blocks[i].ID == id {
			return &v.doc.Blocks[i], true
		}
	}
	return nil, false
}

// Validate checks every structural invariant of the document and returns it
// wrapped as a *Validated. Violations are collected, not short-circuited:
// the returned error is an [errors.ValidationErrors] listing every problem
// with a path to the offending element. Validation also applies defaults
// (language) to the copy it wraps; the input document is never mutated.
func Validate(doc Document) (*Validated, error) {
	var violations errors.ValidationErrors
	add := func(path, format string, args ...any) {
		violations = append(violations, errors.Violation(path, format, args...))
	}

	// Meta
	if doc.Meta.Title == "" {
		add("meta.title", "title is required")
	}
	if doc.Meta.Language == "" {
		doc.Meta.Language = DefaultLanguage
	}
	for i, src := range doc.Meta.Sources {
		path := fmt.Sprintf("meta.sources[%d]", i)
		if !knownSourceKinds[src.Kind] {
			add(path+".kind", "unknown source kind: %q", src.Kind)
		}
		if src.Locator == "" {
			add(path+".locator", "locator is required")
		}
	}

	// Outline
	outlineIDs := make(map[string]bool, len(doc.Outline))
	for i, entry := range doc.Outline {
		path := fmt.Sprintf("outline[%d]", i)
		if entry.ID == "" {
			add(path+".id", "id is required")
		} else if outlineIDs[entry.ID] {
			add(path+".id", "duplicate outline id: %q", entry.ID)
		}
		outlineIDs[entry.ID] = true
		if entry.Level < MinHeadingLevel || entry.Level > MaxHeadingLevel {
			add(path+".level", "level %d out of range [%d,%d]", entry.Level, MinHeadingLevel, MaxHeadingLevel)
		}
		if entry.Weight < 0 || entry.Weight > 1 {
			add(path+".weight", "weight %g out of range [0,1]", entry.Weight)
		}
	}

	// Blocks
	blockIDs := make(map[string]bool, len(doc.Blocks))
	for i := range doc.Blocks {
		validateBlock(&doc.Blocks[i], i, blockIDs, add)
	}

	// Styles
	validateStyles(doc.Styles, add)

	if err := violations.OrNil(); err != nil {
		return nil, err
	}
	return &Validated{doc: doc}, nil
}

// validateBlock checks one block's id uniqueness, importance range, variant
// payload, and annotation spans.
func validateBlock(b *Block, idx int, seen map[string]bool, add func(string, string, ...any)) {
	path := fmt.Sprintf("blocks[%d]", idx)

	if b.ID == "" {
		add(path+".id", "id is required")
	} else if seen[b.ID] {
		add(path+".id", "duplicate block id: %q", b.ID)
	}
	seen[b.ID] = true

	if b.Importance < 0 || b.Importance > 1 {
		add(path+".importance", "importance %g out of range [0,1]", b.Importance)
	}

	switch c := b.Content.(type) {
	case Heading:
		if c.Level < MinHeadingLevel || c.Level > MaxHeadingLevel {
			add(path+".level", "heading level %d out of range [%d,%d]", c.Level, MinHeadingLevel, MaxHeadingLevel)
		}
	case List:
		if len(c.Items) == 0 {
			add(path+".items", "list requires at least one item")
		}
	case Image:
		if c.MIME == "" {
			add(path+".mime", "image mime type is required")
		}
		if len(c.Data) == 0 && c.URL == "" {
			add(path, "image requires data or url")
		}
	case Table:
		if len(c.Rows) == 0 && len(c.Headers) == 0 {
			add(path, "table requires headers or rows")
		}
		if len(c.Headers) > 0 {
			for r, row := range c.Rows {
				if len(row) != len(c.Headers) {
					add(fmt.Sprintf("%s.rows[%d]", path, r),
						"row has %d columns, headers have %d", len(row), len(c.Headers))
				}
			}
		}
	case Paragraph, Quote, Code, Separator:
		// no variant-specific invariants
	case nil:
		add(path+".type", "block content is required")
	}

	text := b.Text()
	for ai, ann := range b.Annotations {
		apath := fmt.Sprintf("%s.annotations[%d]", path, ai)
		if !knownAnnotationKinds[ann.Kind] {
			add(apath+".kind", "unknown annotation kind: %q", ann.Kind)
		}
		if ann.Span.Start < 0 || ann.Span.Start >= ann.Span.End || ann.Span.End > len(text) {
			add(apath+".span", "span [%d,%d) invalid for text of length %d",
				ann.Span.Start, ann.Span.End, len(text))
		}
		if ann.Kind == AnnotationLink && ann.URL == "" {
			add(apath+".url", "link annotation requires a url")
		}
		if ann.Kind == AnnotationNote && ann.Note == "" {
			add(apath+".note", "note annotation requires a note")
		}
	}
}

// validateStyles checks the document-level style declaration. A nil palette
// inherits the theme's; an explicitly empty one is a violation.
func validateStyles(s Styles, add func(string, string, ...any)) {
	if s.Theme != "" && !KnownThemes[s.Theme] {
		add("styles.theme", "unknown theme: %q", s.Theme)
	}
	if s.Palette != nil && len(s.Palette) == 0 {
		add("styles.palette", "palette must have at least one color")
	}
	for i, c := range s.Palette {
		if !hexColorRegex.MatchString(c) {
			add(fmt.Sprintf("styles.palette[%d]", i), "invalid color value: %q", c)
		}
	}
	if s.Spacing != "" && !knownSpacings[s.Spacing] {
		add("styles.spacing", "unknown spacing: %q", s.Spacing)
	}
	if s.PageSize != "" && !knownPageSizes[s.PageSize] {
		add("styles.pageSize", "unknown page size: %q", s.PageSize)
	}
}
