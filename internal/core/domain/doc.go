// Package domain defines the core business entities for groundkit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested document with extracted text and metadata
//   - KnowledgeItem: A scored, categorised fragment of a document
//   - ContextualResponse: The ranked result of a knowledge query
//   - RawDocument: Opaque uploaded bytes before extraction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
