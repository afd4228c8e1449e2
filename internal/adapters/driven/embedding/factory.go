// Package embedding provides the factory that selects an embedding backend.
package embedding

import (
	"fmt"
	"time"

	ollamaembed "github.com/inkforge-labs/quill-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/inkforge-labs/quill-cli/internal/adapters/driven/embedding/openai"
	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driven"
)

// Settings holds provider-agnostic embedding configuration.
type Settings struct {
	// Provider selects the backend.
	Provider domain.EmbeddingProvider

	// APIKey authenticates against the provider. Required for openai,
	// unused for ollama.
	APIKey string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// Model is the embedding model name. Empty means the provider default.
	Model string

	// Dimensions is the embedding vector size.
	Dimensions int

	// BatchSize is the number of chunks per EmbedDocuments batch.
	BatchSize int

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// MaxInputChars is the per-text input budget.
	MaxInputChars int
}

// IsConfigured reports whether the settings can produce a working service.
// OpenAI needs an API key; Ollama runs without credentials.
func (s Settings) IsConfigured() bool {
	switch s.Provider {
	case domain.ProviderOpenAI:
		return s.APIKey != ""
	case domain.ProviderOllama:
		return true
	default:
		return false
	}
}

// NewService creates the embedding service the settings select. It returns
// (nil, nil) when the provider is not configured: callers treat a nil
// service as "retrieval degrades to fallback", not as an error.
func NewService(settings Settings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case domain.ProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:       settings.BaseURL,
			Model:         settings.Model,
			Timeout:       settings.Timeout,
			Dimensions:    settings.Dimensions,
			BatchSize:     settings.BatchSize,
			MaxInputChars: settings.MaxInputChars,
		}), nil

	case domain.ProviderOpenAI:
		if settings.APIKey == "" {
			return nil, nil
		}
		svc, err := openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:        settings.APIKey,
			BaseURL:       settings.BaseURL,
			Model:         settings.Model,
			Timeout:       settings.Timeout,
			Dimensions:    settings.Dimensions,
			BatchSize:     settings.BatchSize,
			MaxInputChars: settings.MaxInputChars,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
		}
		return svc, nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider %q: %w",
			settings.Provider, domain.ErrInvalidInput)
	}
}
