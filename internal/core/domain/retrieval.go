package domain

// ContextSource identifies how a retrieval context was produced.
type ContextSource string

// Context sources.
const (
	// ContextSourceVerbatim means the reference was short enough to use whole.
	ContextSourceVerbatim ContextSource = "verbatim"

	// ContextSourceRetrieved means chunks were embedded, stored and retrieved
	// in this call.
	ContextSourceRetrieved ContextSource = "retrieved"

	// ContextSourceCached means the session already held embeddings and only
	// the query was embedded.
	ContextSourceCached ContextSource = "cached"

	// ContextSourceFallback means retrieval failed and the raw document
	// prefix was used instead.
	ContextSourceFallback ContextSource = "fallback"
)

// IsValid returns true if the context source is recognised.
func (s ContextSource) IsValid() bool {
	switch s {
	case ContextSourceVerbatim, ContextSourceRetrieved, ContextSourceCached, ContextSourceFallback:
		return true
	default:
		return false
	}
}

// DegradeReason explains why retrieval fell back to the raw document.
type DegradeReason string

// Degradation reasons.
const (
	// DegradeNone means retrieval completed normally.
	DegradeNone DegradeReason = ""

	// DegradeEmbeddingUnavailable means no embedding service is configured.
	DegradeEmbeddingUnavailable DegradeReason = "embedding_unavailable"

	// DegradeNoChunks means splitting the reference yielded nothing.
	DegradeNoChunks DegradeReason = "no_chunks"

	// DegradeEmbeddingFailed means embedding the chunks failed entirely.
	DegradeEmbeddingFailed DegradeReason = "embedding_failed"

	// DegradeStoreFailed means writing embeddings to the session store failed.
	DegradeStoreFailed DegradeReason = "store_failed"

	// DegradeQueryFailed means embedding the draft or querying the store failed.
	DegradeQueryFailed DegradeReason = "query_failed"

	// DegradeNoMatches means the store returned zero candidates.
	DegradeNoMatches DegradeReason = "no_matches"
)

// RetrievalResult is the context produced for downstream prompt assembly,
// with an explicit signal describing the path taken. Failures inside the
// retrieval pipeline never surface as errors; they surface here.
type RetrievalResult struct {
	// Context is the text to inject into the generation prompt.
	Context string `json:"context"`

	// Source identifies how the context was produced.
	Source ContextSource `json:"source"`

	// Degraded is true when the pipeline fell back from its intended path.
	Degraded bool `json:"degraded"`

	// Reason explains the degradation. Empty when Degraded is false.
	Reason DegradeReason `json:"reason,omitempty"`

	// ChunkCount is the number of retrieved chunks joined into Context.
	// Zero for verbatim and fallback results.
	ChunkCount int `json:"chunkCount"`
}
