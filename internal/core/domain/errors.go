package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch indicates two vectors of different lengths were
	// compared. This is a hard failure at the similarity layer; the embedding
	// layer only warns.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// Retrieval degrades to a raw-document fallback without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
