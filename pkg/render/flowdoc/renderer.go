package flowdoc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"sort"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/enhance"
	"github.com/lbreuer/folium/pkg/errors"
	"github.com/lbreuer/folium/pkg/layout"
	"github.com/lbreuer/folium/pkg/render"
	"github.com/lbreuer/folium/pkg/style"
)

// Renderer emits DOCX.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns the flow-document backend.
func New() *Renderer { return &Renderer{} }

// Render assembles the OOXML archive. Blocks follow plan order; card-mode
// blocks get a shaded, bordered paragraph treatment since a flow document
// has no absolute positioning.
func (r *Renderer) Render(v *document.Validated, sheet *style.Sheet, plan *layout.Plan, elements enhance.Elements, opts render.Options) ([]byte, error) {
	body := buildBody(v, sheet, plan, opts)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(sheet.Fonts.Heading, sheet.Fonts.Body, plan.Config.BaseFontSize, plan.Config.ScaleRatio)},
		{"word/document.xml", body},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "creating archive entry %s", part.name)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "writing archive entry %s", part.name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "closing archive")
	}
	return buf.Bytes(), nil
}

func buildBody(v *document.Validated, sheet *style.Sheet, plan *layout.Plan, opts render.Options) string {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + "\n")

	writeParagraph(&buf, "Heading1", nil, run{text: v.Meta().Title})
	if v.Meta().Author != "" {
		writeParagraph(&buf, "", nil, run{text: v.Meta().Author, italic: true})
	}

	if opts.IncludeTOC && len(v.Outline()) > 0 {
		writeParagraph(&buf, "Heading2", nil, run{text: "Contents"})
		for _, entry := range v.Outline() {
			writeParagraph(&buf, "", &paraProps{indentLevel: entry.Level - 1}, run{text: entry.Title, bold: entry.Weight >= 0.7})
		}
	}

	for _, box := range plan.Boxes {
		b, ok := v.Block(box.BlockID)
		if !ok {
			continue
		}
		writeBlock(&buf, b, &box, sheet, opts)
	}

	buf.WriteString(`</w:body></w:document>` + "\n")
	return buf.String()
}

// run is one styled text run within a paragraph.
type run struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	strike    bool
	highlight bool
}

// paraProps are the optional paragraph-level properties.
type paraProps struct {
	indentLevel int
	card        bool
	align       string
}

func writeParagraph(buf *bytes.Buffer, styleID string, props *paraProps, runs ...run) {
	buf.WriteString("<w:p>")
	if styleID != "" || props != nil {
		buf.WriteString("<w:pPr>")
		if styleID != "" {
			fmt.Fprintf(buf, `<w:pStyle w:val="%s"/>`, styleID)
		}
		if props != nil {
			if props.indentLevel > 0 {
				fmt.Fprintf(buf, `<w:ind w:left="%d"/>`, props.indentLevel*360)
			}
			if props.card {
				buf.WriteString(`<w:pBdr><w:top w:val="single" w:sz="6" w:space="4" w:color="auto"/><w:bottom w:val="single" w:sz="6" w:space="4" w:color="auto"/><w:left w:val="single" w:sz="6" w:space="4" w:color="auto"/><w:right w:val="single" w:sz="6" w:space="4" w:color="auto"/></w:pBdr>`)
				buf.WriteString(`<w:shd w:val="clear" w:fill="F7FAFC"/>`)
			}
			switch props.align {
			case "center":
				buf.WriteString(`<w:jc w:val="center"/>`)
			case "right":
				buf.WriteString(`<w:jc w:val="right"/>`)
			}
		}
		buf.WriteString("</w:pPr>")
	}
	for _, r := range runs {
		writeRun(buf, r)
	}
	buf.WriteString("</w:p>\n")
}

func writeRun(buf *bytes.Buffer, r run) {
	buf.WriteString("<w:r>")
	if r.bold || r.italic || r.underline || r.strike || r.highlight {
		buf.WriteString("<w:rPr>")
		if r.bold {
			buf.WriteString("<w:b/>")
		}
		if r.italic {
			buf.WriteString("<w:i/>")
		}
		if r.underline {
			buf.WriteString(`<w:u w:val="single"/>`)
		}
		if r.strike {
			buf.WriteString("<w:strike/>")
		}
		if r.highlight {
			buf.WriteString(`<w:highlight w:val="yellow"/>`)
		}
		buf.WriteString("</w:rPr>")
	}
	fmt.Fprintf(buf, `<w:t xml:space="preserve">%s</w:t>`, esc(r.text))
	buf.WriteString("</w:r>")
}

func writeBlock(buf *bytes.Buffer, b *document.Block, box *layout.Box, sheet *style.Sheet, opts render.Options) {
	resolved := sheet.Blocks[b.ID]
	props := &paraProps{card: box.Mode == layout.ModeCard, align: resolved.Align}
	base := run{bold: resolved.Emphasis == "bold", italic: resolved.Emphasis == "italic"}

	anns := b.Annotations
	if !opts.IncludeAnnotations {
		anns = nil
	}

	switch c := b.Content.(type) {
	case document.Heading:
		writeParagraph(buf, fmt.Sprintf("Heading%d", c.Level), props, annotatedRuns(c.Text, anns, base, opts.IncludeFootnotes)...)
	case document.Paragraph:
		writeParagraph(buf, "", props, annotatedRuns(c.Text, anns, base, opts.IncludeFootnotes)...)
	case document.Quote:
		writeParagraph(buf, "Quote", props, annotatedRuns(c.Text, anns, base, opts.IncludeFootnotes)...)
	case document.Code:
		writeParagraph(buf, "Code", props, run{text: c.Text})
	case document.List:
		for i, item := range c.Items {
			prefix := "• "
			if c.Ordered {
				prefix = fmt.Sprintf("%d. ", i+1)
			}
			r := base
			r.text = prefix + item
			writeParagraph(buf, "", &paraProps{indentLevel: 1, card: props.card}, r)
		}
	case document.Image:
		// Embedding image parts needs media relationships; the flow backend
		// represents images by their caption or locator instead.
		label := c.Caption
		if label == "" {
			label = c.URL
		}
		if label == "" {
			label = "[image]"
		}
		writeParagraph(buf, "", props, run{text: "[" + label + "]", italic: true})
	case document.Table:
		writeDocxTable(buf, c)
	case document.Separator:
		writeParagraph(buf, "", &paraProps{align: "center"}, run{text: "* * *"})
	}
}

// annotatedRuns splits text into runs at annotation span boundaries.
// Overlapping spans keep the earlier annotation; links degrade to
// "text (url)" and notes to an italic parenthetical when footnotes are on.
func annotatedRuns(text string, anns []document.Annotation, base run, footnotes bool) []run {
	if len(anns) == 0 {
		r := base
		r.text = text
		return []run{r}
	}

	sorted := make([]document.Annotation, len(anns))
	copy(sorted, anns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Span.Start < sorted[j].Span.Start })

	var runs []run
	pos := 0
	emit := func(r run) {
		if r.text != "" {
			runs = append(runs, r)
		}
	}
	for _, ann := range sorted {
		if ann.Span.Start < pos || ann.Span.End > len(text) {
			continue
		}
		plain := base
		plain.text = text[pos:ann.Span.Start]
		emit(plain)

		marked := base
		marked.text = text[ann.Span.Start:ann.Span.End]
		switch ann.Kind {
		case document.AnnotationHighlight:
			marked.highlight = true
		case document.AnnotationUnderline:
			marked.underline = true
		case document.AnnotationStrikethrough:
			marked.strike = true
		case document.AnnotationLink:
			marked.underline = true
			marked.text += " (" + ann.URL + ")"
		case document.AnnotationNote:
			if footnotes {
				emit(marked)
				note := base
				note.italic = true
				note.text = " (" + ann.Note + ")"
				emit(note)
				pos = ann.Span.End
				continue
			}
		}
		emit(marked)
		pos = ann.Span.End
	}
	tail := base
	tail.text = text[pos:]
	emit(tail)
	return runs
}

func writeDocxTable(buf *bytes.Buffer, tbl document.Table) {
	buf.WriteString(`<w:tbl><w:tblPr><w:tblBorders><w:top w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/><w:left w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/><w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/></w:tblBorders></w:tblPr>` + "\n")

	writeRow := func(cells []string, header bool) {
		buf.WriteString("<w:tr>")
		for _, cell := range cells {
			buf.WriteString("<w:tc><w:p>")
			writeRun(buf, run{text: cell, bold: header})
			buf.WriteString("</w:p></w:tc>")
		}
		buf.WriteString("</w:tr>\n")
	}
	if len(tbl.Headers) > 0 {
		writeRow(tbl.Headers, true)
	}
	for _, row := range tbl.Rows {
		writeRow(row, false)
	}
	buf.WriteString("</w:tbl>\n")
}
