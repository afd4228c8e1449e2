// Package openai provides an embedding service adapter using OpenAI API.
// The BaseURL is configurable, so any OpenAI-compatible server works too.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"golang.org/x/time/rate"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/quill-cli/internal/logger"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "text-embedding-3-small"
	DefaultTimeout = 60 * time.Second

	// DefaultDimensions keeps vectors small; text-embedding-3-* models
	// support reduced output dimensions natively.
	DefaultDimensions = 384

	// DefaultBatchSize is how many chunks go into one API request.
	DefaultBatchSize = 10

	// DefaultMaxInputChars is the per-text input budget. Longer inputs are
	// truncated before being sent.
	DefaultMaxInputChars = 2048

	// requestsPerSecond caps the outbound request rate.
	requestsPerSecond = 5
)

// truncateBoundaryRatio is how much of the budget a natural boundary must
// preserve before it is preferred over a hard cut.
const truncateBoundaryRatio = 0.8

// Config holds configuration for the OpenAI embedding service.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the embedding model to use (default: text-embedding-3-small).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// Dimensions is the embedding vector size (default: 384).
	// Only applicable to text-embedding-3-* models.
	Dimensions int

	// BatchSize is the number of texts per API request (default: 10).
	BatchSize int

	// MaxInputChars is the per-text input budget (default: 2048).
	MaxInputChars int
}

// EmbeddingService generates embeddings using OpenAI API.
type EmbeddingService struct {
	client        *http.Client
	limiter       *rate.Limiter
	baseURL       string
	apiKey        string
	model         string
	dimensions    int
	batchSize     int
	maxInputChars int
}

// embeddingRequest is the OpenAI API request format.
type embeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

// embeddingResponse is the OpenAI API response format.
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Usage struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewEmbeddingService creates a new OpenAI embedding service.
func NewEmbeddingService(cfg Config) (*EmbeddingService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required: %w", domain.ErrInvalidInput)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = DefaultDimensions
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxInputChars <= 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}

	return &EmbeddingService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:       rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		dimensions:    cfg.Dimensions,
		batchSize:     cfg.BatchSize,
		maxInputChars: cfg.MaxInputChars,
	}, nil
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("openai: no embedding returned")
	}
	return embeddings[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one request.
// Oversized texts are truncated to the input budget first.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	input := make([]string, len(texts))
	for i, text := range texts {
		input[i] = s.truncateInput(text)
	}

	reqBody := embeddingRequest{
		Model: s.model,
		Input: input,
	}

	// Only include dimensions for text-embedding-3-* models
	if s.model == "text-embedding-3-small" || s.model == "text-embedding-3-large" {
		reqBody.Dimensions = s.dimensions
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var embedResp embeddingResponse
	if err := json.Unmarshal(body, &embedResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if embedResp.Error != nil {
		return nil, fmt.Errorf("openai error: %s", embedResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}

	// Convert float64 to float32 and order by index
	embeddings := make([][]float32, len(texts))
	for _, data := range embedResp.Data {
		embedding := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			embedding[i] = float32(v)
		}
		if len(embedding) != s.dimensions {
			logger.Warn("Embedding dimension mismatch: expected %d, got %d", s.dimensions, len(embedding))
		}
		embeddings[data.Index] = embedding
	}

	return embeddings, nil
}

// EmbedDocuments embeds chunks in fixed-size batches. A failed batch is
// logged and skipped rather than failing the call, so the result may cover
// only a subset of the chunks.
func (s *EmbeddingService) EmbedDocuments(ctx context.Context, chunks []domain.TextChunk) ([]domain.EmbeddingDocument, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	docs := make([]domain.EmbeddingDocument, 0, len(chunks))
	for start := 0; start < len(chunks); start += s.batchSize {
		end := start + s.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		embeddings, err := s.EmbedBatch(ctx, texts)
		if err != nil {
			logger.Warn("Embedding batch %d-%d failed, skipping: %v", start, end-1, err)
			continue
		}

		for i, chunk := range batch {
			if i >= len(embeddings) || embeddings[i] == nil {
				continue
			}
			docs = append(docs, domain.EmbeddingDocument{
				ID:        fmt.Sprintf("chunk-%d", chunk.ID),
				Text:      chunk.Text,
				Embedding: embeddings[i],
				Metadata: map[string]any{
					"startIndex": chunk.StartIndex,
					"endIndex":   chunk.EndIndex,
				},
			})
		}
	}

	return docs, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /models endpoint.
// This is a lightweight check that validates the API key without running inference.
func (s *EmbeddingService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("openai: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *EmbeddingService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

// Pricing in USD per million tokens.
var modelPricing = map[string]float64{
	"text-embedding-3-small": 0.02,
	"text-embedding-3-large": 0.13,
	"text-embedding-ada-002": 0.10,
}

// charsPerToken approximates tokens from text length.
const charsPerToken = 4

// EstimateCost returns the approximate USD cost of embedding the texts.
// Unknown models cost 0.
func (s *EmbeddingService) EstimateCost(texts []string) float64 {
	perMillion, ok := modelPricing[s.model]
	if !ok {
		return 0
	}

	chars := 0
	for _, text := range texts {
		if len(text) > s.maxInputChars {
			chars += s.maxInputChars
			continue
		}
		chars += len(text)
	}

	tokens := float64(chars) / charsPerToken
	return tokens / 1_000_000 * perMillion
}

// truncateInput caps text at the input budget, preferring to cut at a
// sentence boundary, then a word boundary, before falling back to a hard
// cut. A boundary is only used when it preserves most of the budget.
func (s *EmbeddingService) truncateInput(text string) string {
	if len(text) <= s.maxInputChars {
		return text
	}

	window := text[:s.maxInputChars]
	minKeep := int(float64(s.maxInputChars) * truncateBoundaryRatio)

	if cut := lastSentenceEnd(window); cut >= minKeep {
		return strings.TrimSpace(window[:cut])
	}
	if cut := strings.LastIndexFunc(window, unicode.IsSpace); cut >= minKeep {
		return strings.TrimSpace(window[:cut])
	}
	return window
}

// lastSentenceEnd returns the index just past the last terminal punctuation
// mark in s, or -1 if there is none.
func lastSentenceEnd(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '.', '!', '?':
			return i + 1
		}
	}
	return -1
}
