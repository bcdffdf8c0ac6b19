// Package document defines the content model for a renderable document and
// its validation rules.
//
// # Overview
//
// A [Document] is the format-agnostic input to the composition pipeline:
// metadata, an outline, an ordered list of content blocks, and a style
// declaration. It describes WHAT a document contains — layout, decoration,
// and serialization are handled by downstream packages.
//
// Block content is a closed set of variants implemented as a sealed
// interface ([BlockContent]): heading, paragraph, list, quote, image, table,
// code, and separator. Each variant carries only the fields it needs, and a
// type switch over the set is exhaustive by construction.
//
// # Validation
//
// [Validate] checks every structural invariant (unique ids, level and weight
// ranges, annotation spans, palette presence, table column counts) and
// collects ALL violations into a single [errors.ValidationErrors] list with
// a path locating each offending element. A document that passes validation
// is wrapped in a [Validated], which downstream stages treat as immutable.
//
// # Ownership
//
// A Document and its nested collections belong to a single render request.
// Layout and enhancement stages produce derived structures that reference
// blocks by id rather than embedding them.
package document
