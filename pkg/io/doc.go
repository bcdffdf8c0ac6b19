// Package io reads and writes documents as JSON.
//
// The on-disk format mirrors the [document.Document] structure directly:
// a JSON object with "meta", "outline", "blocks", and "styles" fields.
// Import decodes without validating; pass the result to [document.Validate]
// (or the pipeline, which does so) to get the full list of schema
// violations rather than failing on the first structural problem.
//
// # Usage
//
// Load a document from a file:
//
//	doc, err := io.ImportJSON("report.json")
//	if err != nil {
//	    return err
//	}
//
// Write one back out:
//
//	if err := io.ExportJSON(doc, "report.json"); err != nil {
//	    return err
//	}
package io
