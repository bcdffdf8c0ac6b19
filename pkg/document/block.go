package document

import (
	"encoding/json"
	"fmt"
)

// BlockKind discriminates the closed set of block content variants.
type BlockKind string

// Block kinds.
const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindList      BlockKind = "list"
	KindQuote     BlockKind = "quote"
	KindImage     BlockKind = "image"
	KindTable     BlockKind = "table"
	KindCode      BlockKind = "code"
	KindSeparator BlockKind = "separator"
)

// =============================================================================
// Block - One Content Unit
// =============================================================================

// Block is a single content unit of a document. Importance in [0,1] drives
// the card-versus-flow placement decision downstream; it defaults to
// [DefaultImportance] when omitted from JSON.
type Block struct {
	ID          string
	Content     BlockContent
	Importance  float64
	Annotations []Annotation
	Hints       *StyleHints
}

// Kind returns the content variant tag, or "" for a block without content.
func (b *Block) Kind() BlockKind {
	if b.Content == nil {
		return ""
	}
	return b.Content.Kind()
}

// Text returns the textual payload of text-bearing variants (heading,
// paragraph, quote, code) and "" for all others. Annotation spans index
// into this string.
func (b *Block) Text() string {
	switch c := b.Content.(type) {
	case Heading:
		return c.Text
	case Paragraph:
		return c.Text
	case Quote:
		return c.Text
	case Code:
		return c.Text
	default:
		return ""
	}
}

// =============================================================================
// BlockContent - Sealed Variant Set
// =============================================================================

// BlockContent is the closed set of block payloads. The unexported method
// seals the interface so the set of variants cannot grow outside this
// package, keeping type switches exhaustive.
type BlockContent interface {
	Kind() BlockKind
	blockContent()
}

// Heading is a section title at a level from 1 (largest) through 6.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Paragraph is a run of body text.
type Paragraph struct {
	Text string `json:"text"`
}

// List is an ordered or unordered sequence of items.
type List struct {
	Ordered bool     `json:"ordered"`
	Items   []string `json:"items"`
}

// Quote is an attributed or unattributed block quotation.
type Quote struct {
	Text string `json:"text"`
}

// Image embeds or references a picture. Exactly one of Data or URL should be
// set; Caption is optional.
type Image struct {
	MIME    string `json:"mime"`
	Data    []byte `json:"data,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Table is a grid of cells with an optional header row. When Headers is
// present every row must have the same column count as Headers.
type Table struct {
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows"`
}

// Code is preformatted text with an optional language tag.
type Code struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// Separator is a horizontal divider with no payload.
type Separator struct{}

func (Heading) Kind() BlockKind   { return KindHeading }
func (Paragraph) Kind() BlockKind { return KindParagraph }
func (List) Kind() BlockKind      { return KindList }
func (Quote) Kind() BlockKind     { return KindQuote }
func (Image) Kind() BlockKind     { return KindImage }
func (Table) Kind() BlockKind     { return KindTable }
func (Code) Kind() BlockKind      { return KindCode }
func (Separator) Kind() BlockKind { return KindSeparator }

func (Heading) blockContent()   {}
func (Paragraph) blockContent() {}
func (List) blockContent()      {}
func (Quote) blockContent()     {}
func (Image) blockContent()     {}
func (Table) blockContent()     {}
func (Code) blockContent()      {}
func (Separator) blockContent() {}

// =============================================================================
// JSON Serialization
// =============================================================================

// blockJSON is the wire shape of a Block: a flat object with a "type"
// discriminator and only the fields relevant to that variant.
type blockJSON struct {
	ID          string       `json:"id"`
	Type        BlockKind    `json:"type"`
	Importance  *float64     `json:"importance,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Hints       *StyleHints  `json:"styleHints,omitempty"`

	// Variant payloads (union; exactly one group is populated per type)
	Text     string     `json:"text,omitempty"`
	Level    int        `json:"level,omitempty"`
	Language string     `json:"language,omitempty"`
	Ordered  bool       `json:"ordered,omitempty"`
	Items    []string   `json:"items,omitempty"`
	MIME     string     `json:"mime,omitempty"`
	Data     []byte     `json:"data,omitempty"`
	URL      string     `json:"url,omitempty"`
	Caption  string     `json:"caption,omitempty"`
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
}

// MarshalJSON serializes the block with its "type" discriminator.
func (b Block) MarshalJSON() ([]byte, error) {
	imp := b.Importance
	out := blockJSON{
		ID:          b.ID,
		Type:        b.Kind(),
		Importance:  &imp,
		Annotations: b.Annotations,
		Hints:       b.Hints,
	}
	switch c := b.Content.(type) {
	case Heading:
		out.Text, out.Level = c.Text, c.Level
	case Paragraph:
		out.Text = c.Text
	case List:
		out.Ordered, out.Items = c.Ordered, c.Items
	case Quote:
		out.Text = c.Text
	case Image:
		out.MIME, out.Data, out.URL, out.Caption = c.MIME, c.Data, c.URL, c.Caption
	case Table:
		out.Headers, out.Rows = c.Headers, c.Rows
	case Code:
		out.Text, out.Language = c.Text, c.Language
	case Separator, nil:
		// no payload
	}
	return json.Marshal(out)
}

// UnmarshalJSON deserializes a block, rejecting unknown "type" values and
// applying the importance default.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = raw.ID
	b.Annotations = raw.Annotations
	b.Hints = raw.Hints
	if raw.Importance != nil {
		b.Importance = *raw.Importance
	} else {
		b.Importance = DefaultImportance
	}

	switch raw.Type {
	case KindHeading:
		b.Content = Heading{Text: raw.Text, Level: raw.Level}
	case KindParagraph:
		b.Content = Paragraph{Text: raw.Text}
	case KindList:
		b.Content = List{Ordered: raw.Ordered, Items: raw.Items}
	case KindQuote:
		b.Content = Quote{Text: raw.Text}
	case KindImage:
		b.Content = Image{MIME: raw.MIME, Data: raw.Data, URL: raw.URL, Caption: raw.Caption}
	case KindTable:
		b.Content = Table{Headers: raw.Headers, Rows: raw.Rows}
	case KindCode:
		b.Content = Code{Text: raw.Text, Language: raw.Language}
	case KindSeparator:
		b.Content = Separator{}
	default:
		return fmt.Errorf("unknown block type: %q", raw.Type)
	}
	return nil
}
