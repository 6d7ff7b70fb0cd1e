// Package model defines the document data model produced by the parsing
// pipeline: the Document itself, its chapters, extracted image references,
// normalized metadata, and processing provenance.
//
// All entities are created within a single parse call and owned by the
// returned Document; nothing in this package touches the filesystem or the
// underlying PDF engine.
package model
