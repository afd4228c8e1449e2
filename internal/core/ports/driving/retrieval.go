package driving

import (
	"context"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// RetrievalService produces the relevant-context text injected into a
// generation prompt.
type RetrievalService interface {
	// BuildContext selects the most relevant parts of the reference document
	// for the given draft, caching chunk embeddings under the session id.
	// It never fails: every internal error degrades to a raw-document
	// fallback recorded on the result.
	BuildContext(ctx context.Context, sessionID, reference, draft string) domain.RetrievalResult
}
