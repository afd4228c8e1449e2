// Package chunker splits long reference documents into overlapping,
// sentence-boundary-aware chunks for embedding and retrieval.
package chunker

import (
	"strings"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 500

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 100

// DefaultRAGThreshold is the document length, in characters, above which
// retrieval is used instead of passing the document verbatim.
const DefaultRAGThreshold = 2000

// boundaryWindow bounds the lookback/lookahead scan for a sentence boundary
// around the nominal chunk end.
const boundaryWindow = 50

// charsPerToken is the planning approximation of characters per token.
const charsPerToken = 4

// Processor splits text into sentence-aware chunks.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the nominal chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure overlap doesn't exceed chunk size
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Split divides text into ordered, overlapping chunks. The source is trimmed
// first; offsets refer to the trimmed text. Empty input yields no chunks, and
// input no longer than the chunk size yields exactly one chunk. Split is a
// pure function: identical input always produces identical chunks.
func (p *Processor) Split(text string) []domain.TextChunk {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if len(trimmed) <= p.chunkSize {
		return []domain.TextChunk{{
			ID:         0,
			Text:       trimmed,
			StartIndex: 0,
			EndIndex:   len(trimmed),
		}}
	}

	var chunks []domain.TextChunk
	n := len(trimmed)
	id := 0
	start := 0

	for start < n {
		end := start + p.chunkSize
		if end >= n {
			end = n
		} else {
			end = p.snapBoundary(trimmed, start, end)
		}

		piece := strings.TrimSpace(trimmed[start:end])
		if piece != "" {
			chunks = append(chunks, domain.TextChunk{
				ID:         id,
				Text:       piece,
				StartIndex: start,
				EndIndex:   end,
			})
			id++
		}

		if end >= n {
			break
		}

		next := end - p.overlap
		// Degenerate case: overlap consumed the whole chunk. Force forward
		// progress so the walk terminates.
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

// snapBoundary adjusts a nominal chunk end towards a semantic boundary.
// It scans a bounded window around the nominal end for the first
// sentence-terminal punctuation followed by whitespace, then falls back to
// the nearest preceding space.
func (p *Processor) snapBoundary(text string, start, nominal int) int {
	lo := nominal - boundaryWindow
	if lo < start {
		lo = start
	}
	hi := nominal + boundaryWindow
	if hi > len(text) {
		hi = len(text)
	}

	for i := lo; i < hi-1; i++ {
		if isSentenceTerminal(text[i]) && isWhitespace(text[i+1]) {
			return i + 1
		}
	}

	// Word boundary fallback
	if idx := strings.LastIndexByte(text[start:nominal], ' '); idx > 0 {
		return start + idx
	}

	return nominal
}

func isSentenceTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ShouldUseRAG reports whether a document is large enough to warrant
// chunking and retrieval. Smaller documents are used verbatim.
// A non-positive threshold means DefaultRAGThreshold.
func ShouldUseRAG(text string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultRAGThreshold
	}
	return len(strings.TrimSpace(text)) > threshold
}

// EstimateTokens approximates the token count of text for planning purposes.
// It is a character-count heuristic, not a tokeniser, and must not be used
// for correctness decisions.
func EstimateTokens(text string) int {
	return len(text) / charsPerToken
}

// Reconstruct rejoins chunk texts with single spaces. It is a lossy
// debugging aid for display; faithful reconstruction must use the chunk
// offsets instead.
func Reconstruct(chunks []domain.TextChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}
