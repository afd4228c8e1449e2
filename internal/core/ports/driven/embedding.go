package driven

import (
	"context"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// EmbeddingService generates vector embeddings from text.
// This is an optional service - when nil, retrieval degrades to a
// raw-document fallback.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small with reduced dimensions)
//   - Any OpenAI-compatible server (Ollama, local inference servers)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Oversized input is truncated to the model's input budget first.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one request.
	// Any non-success response fails the whole call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedDocuments embeds chunks in fixed-size batches. A failed batch is
	// logged and skipped rather than failing the call, so the result may
	// cover only a subset of the chunks.
	EmbedDocuments(ctx context.Context, chunks []domain.TextChunk) ([]domain.EmbeddingDocument, error)

	// Dimensions returns the embedding vector size (e.g. 384).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
