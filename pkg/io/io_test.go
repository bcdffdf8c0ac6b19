package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
)

func TestRoundTrip(t *testing.T) {
	doc := &document.Document{
		Meta: document.Meta{Title: "Round Trip", Author: "io test"},
		Outline: []document.OutlineEntry{
			{ID: "h1", Level: 1, Title: "Intro", Weight: 0.8},
		},
		Blocks: []document.Block{
			{ID: "h1", Content: document.Heading{Text: "Intro", Level: 1}, Importance: 0.8},
			{ID: "p1", Content: document.Paragraph{Text: "body text"}, Importance: 0.5},
			{ID: "l1", Content: document.List{Ordered: true, Items: []string{"one", "two"}}, Importance: 0.5},
		},
		Styles: document.Styles{Theme: "modern"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, doc)
	}
}

func TestReadJSONUnknownField(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"meta":{"title":"x"},"blocks":[],"styles":{},"extra":1}`))
	if err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestImportExportFile(t *testing.T) {
	doc := &document.Document{
		Meta:   document.Meta{Title: "File Trip"},
		Blocks: []document.Block{{ID: "p", Content: document.Paragraph{Text: "hi"}, Importance: 0.5}},
	}
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.Meta.Title != "File Trip" || len(got.Blocks) != 1 {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
