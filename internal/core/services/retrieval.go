package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driving"
	"github.com/inkforge-labs/quill-cli/internal/logger"
	"github.com/inkforge-labs/quill-cli/internal/postprocessors/chunker"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// Default retrieval parameters.
const (
	// DefaultTopK is how many chunks a query returns.
	DefaultTopK = 5

	// DefaultFallbackChars caps the raw-document fallback context.
	DefaultFallbackChars = 5000
)

// chunkSeparator joins retrieved chunks into a single context block.
const chunkSeparator = "\n\n---\n\n"

// RetrievalService selects the most relevant parts of a reference document
// for a draft. The embedding service is optional; without it the service
// degrades to a raw-document fallback rather than failing.
type RetrievalService struct {
	chunker       *chunker.Processor
	embedder      driven.EmbeddingService
	store         driven.SessionVectorStore
	topK          int
	ragThreshold  int
	fallbackChars int
}

// RetrievalOption configures the retrieval service.
type RetrievalOption func(*RetrievalService)

// WithTopK sets how many chunks a query returns.
func WithTopK(k int) RetrievalOption {
	return func(s *RetrievalService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithFallbackChars caps the raw-document fallback context length.
func WithFallbackChars(n int) RetrievalOption {
	return func(s *RetrievalService) {
		if n > 0 {
			s.fallbackChars = n
		}
	}
}

// WithRAGThreshold sets the reference length above which retrieval is used
// instead of verbatim inclusion.
func WithRAGThreshold(n int) RetrievalOption {
	return func(s *RetrievalService) {
		if n > 0 {
			s.ragThreshold = n
		}
	}
}

// NewRetrievalService creates a retrieval service. The embedder may be nil;
// every call then takes the fallback path.
func NewRetrievalService(
	proc *chunker.Processor,
	embedder driven.EmbeddingService,
	store driven.SessionVectorStore,
	opts ...RetrievalOption,
) *RetrievalService {
	s := &RetrievalService{
		chunker:       proc,
		embedder:      embedder,
		store:         store,
		topK:          DefaultTopK,
		ragThreshold:  chunker.DefaultRAGThreshold,
		fallbackChars: DefaultFallbackChars,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// BuildContext produces the relevant-context text for the draft. It never
// returns an error: every failure inside the pipeline degrades to a
// fallback recorded on the result.
func (s *RetrievalService) BuildContext(ctx context.Context, sessionID, reference, draft string) domain.RetrievalResult {
	reference = strings.TrimSpace(reference)

	logger.Section("Context Retrieval")

	// Short references go into the prompt whole.
	if !chunker.ShouldUseRAG(reference, s.ragThreshold) {
		logger.Debug("Reference fits verbatim (%d chars)", len(reference))
		return domain.RetrievalResult{
			Context: reference,
			Source:  domain.ContextSourceVerbatim,
		}
	}

	if s.embedder == nil {
		logger.Info("No embedding service configured, using raw-document fallback")
		return s.fallback(reference, domain.DegradeEmbeddingUnavailable)
	}

	// A warm session skips chunking and re-embedding the reference.
	if s.store.Has(ctx, sessionID) {
		logger.Debug("Session %s has cached embeddings", sessionID)
		return s.query(ctx, sessionID, reference, draft, domain.ContextSourceCached)
	}

	chunks := s.chunker.Split(reference)
	if len(chunks) == 0 {
		return s.fallback(reference, domain.DegradeNoChunks)
	}
	logger.Debug("Split reference into %d chunks", len(chunks))

	docs, err := s.embedder.EmbedDocuments(ctx, chunks)
	if err != nil || len(docs) == 0 {
		if err != nil {
			logger.Warn("Embedding chunks failed: %v", err)
		}
		return s.fallback(reference, domain.DegradeEmbeddingFailed)
	}
	logger.Debug("Embedded %d of %d chunks", len(docs), len(chunks))

	if err := s.store.Store(ctx, sessionID, docs); err != nil {
		logger.Warn("Storing session embeddings failed: %v", err)
		return s.fallback(reference, domain.DegradeStoreFailed)
	}

	return s.query(ctx, sessionID, reference, draft, domain.ContextSourceRetrieved)
}

// query embeds the draft, ranks the session's chunks against it and joins
// the winners into a context block.
func (s *RetrievalService) query(ctx context.Context, sessionID, reference, draft string, source domain.ContextSource) domain.RetrievalResult {
	queryVec, err := s.embedder.Embed(ctx, draft)
	if err != nil {
		logger.Warn("Embedding draft failed: %v", err)
		return s.fallback(reference, domain.DegradeQueryFailed)
	}

	scored, err := s.store.Query(ctx, sessionID, queryVec, s.topK)
	if err != nil {
		logger.Warn("Querying session store failed: %v", err)
		return s.fallback(reference, domain.DegradeQueryFailed)
	}
	if len(scored) == 0 {
		return s.fallback(reference, domain.DegradeNoMatches)
	}

	parts := make([]string, len(scored))
	for i, doc := range scored {
		parts[i] = doc.Document.Text
	}
	logger.Debug("Retrieved %d chunks for context", len(scored))

	return domain.RetrievalResult{
		Context:    strings.Join(parts, chunkSeparator),
		Source:     source,
		ChunkCount: len(scored),
	}
}

// fallback returns a prefix of the raw reference as the context. The cut
// backs off to a rune boundary so multi-byte characters stay intact.
func (s *RetrievalService) fallback(reference string, reason domain.DegradeReason) domain.RetrievalResult {
	context := reference
	if len(context) > s.fallbackChars {
		cut := s.fallbackChars
		for cut > 0 && !utf8.RuneStart(context[cut]) {
			cut--
		}
		context = context[:cut]
	}

	return domain.RetrievalResult{
		Context:  context,
		Source:   domain.ContextSourceFallback,
		Degraded: true,
		Reason:   reason,
	}
}
