package driven

import (
	"context"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// SessionVectorStore caches embedded documents per session id for the
// lifetime of the session TTL. It is the exclusive owner of stored entries;
// callers never hold stored documents beyond a single request.
type SessionVectorStore interface {
	// Store replaces the session's entire document set. Last writer wins;
	// there is no merge.
	Store(ctx context.Context, sessionID string, docs []domain.EmbeddingDocument) error

	// Query returns up to topK documents ranked by similarity to the query
	// vector, and refreshes the session's last-accessed time. An unknown or
	// empty session yields an empty result, never an error.
	Query(ctx context.Context, sessionID string, query []float32, topK int) ([]domain.ScoredDocument, error)

	// Has reports whether the session exists and holds at least one document.
	Has(ctx context.Context, sessionID string) bool

	// EvictExpired removes every session idle for longer than the TTL and
	// returns the number of sessions removed. Safe to call at any time.
	EvictExpired(ctx context.Context) int

	// Clear removes a single session.
	Clear(ctx context.Context, sessionID string) error

	// ClearAll removes every session.
	ClearAll(ctx context.Context) error
}
