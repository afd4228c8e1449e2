package domain

// TextChunk is one contiguous, sentence-boundary-aware piece of a split
// reference document. Chunks are immutable once produced and are owned by
// the caller until they are embedded.
type TextChunk struct {
	// ID is the ordinal position of the chunk within a single split.
	ID int

	// Text is the trimmed chunk content.
	Text string

	// StartIndex is the byte offset of the chunk in the trimmed source.
	StartIndex int

	// EndIndex is the byte offset just past the chunk in the trimmed source.
	// Always greater than StartIndex.
	EndIndex int
}

// EmbeddingDocument pairs chunk text with its vector representation.
// It is the unit stored in and returned from the session vector store.
type EmbeddingDocument struct {
	// ID identifies the document, derived from the chunk ID or supplied
	// externally.
	ID string

	// Text is the embedded text.
	Text string

	// Embedding is the fixed-length vector produced by the embedding model.
	Embedding []float32

	// Metadata contains arbitrary key-value pairs (e.g. source offsets).
	Metadata map[string]any
}

// ScoredDocument is an embedding document ranked by similarity to a query.
type ScoredDocument struct {
	// Document is the matched document.
	Document EmbeddingDocument

	// Score is the cosine similarity to the query vector.
	Score float64
}
