// Package domain defines the core business entities for Quill.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextChunk: A sentence-aware slice of a reference document
//   - EmbeddingDocument: Chunk text paired with its vector representation
//   - LinguisticDNA: Quantitative style metrics extracted from prose
//   - RetrievalResult: The context produced for downstream generation
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
