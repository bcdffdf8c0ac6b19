package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/lbreuer/folium/pkg/document"
	"github.com/lbreuer/folium/pkg/errors"
)

// ReadJSON decodes a JSON document from r.
//
// The input must be a JSON object in the document format: "meta" with at
// least a title, "blocks" with typed content payloads, and optional
// "outline" and "styles" sections. Unknown fields are rejected so typos
// in hand-written documents surface as errors instead of silently
// dropping content.
//
// ReadJSON does not validate the decoded document; structural rules
// (outline references, annotation spans, style values) are checked by
// [document.Validate]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*document.Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding document")
	}
	return &doc, nil
}

// ImportJSON reads a JSON file at path and returns the decoded document.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "opening %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
