// Package file provides TOML-backed configuration for the Quill CLI.
// Configuration lives at ~/.quill/config.toml; a missing file yields the
// defaults, so a fresh install works without any setup.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultConfigDirName = ".quill"
	DefaultConfigFile    = "config.toml"
)

// Config is the full on-disk configuration.
type Config struct {
	Embedding EmbeddingConfig `toml:"embedding"`
	Chunker   ChunkerConfig   `toml:"chunker"`
	Retrieval RetrievalConfig `toml:"retrieval"`
	Store     StoreConfig     `toml:"store"`
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	// Provider selects the embedding backend: "openai" or "ollama".
	Provider string `toml:"provider"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is never written to disk.
	APIKeyEnv string `toml:"api_key_env"`

	// BaseURL is the API base URL. Point it at any OpenAI-compatible server.
	BaseURL string `toml:"base_url"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// Dimensions is the embedding vector size.
	Dimensions int `toml:"dimensions"`

	// BatchSize is the number of chunks per embedding request.
	BatchSize int `toml:"batch_size"`

	// TimeoutSecs is the request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`

	// MaxInputChars is the per-text input budget before truncation.
	MaxInputChars int `toml:"max_input_chars"`
}

// ChunkerConfig configures document splitting.
type ChunkerConfig struct {
	// ChunkSize is the nominal chunk length in characters.
	ChunkSize int `toml:"chunk_size"`

	// Overlap is how many characters consecutive chunks share.
	Overlap int `toml:"overlap"`
}

// RetrievalConfig configures context retrieval.
type RetrievalConfig struct {
	// TopK is how many chunks a query returns.
	TopK int `toml:"top_k"`

	// RAGThreshold is the document length in characters above which
	// retrieval kicks in instead of verbatim inclusion.
	RAGThreshold int `toml:"rag_threshold"`

	// FallbackChars caps the raw-document fallback context length.
	FallbackChars int `toml:"fallback_chars"`
}

// StoreConfig configures the session vector store.
type StoreConfig struct {
	// TTLMinutes is the idle lifetime of a session.
	TTLMinutes int `toml:"ttl_minutes"`

	// SweepMinutes is how often expired sessions are evicted.
	SweepMinutes int `toml:"sweep_minutes"`
}

// Default returns the configuration a fresh install runs with.
func Default() Config {
	return Config{
		Embedding: EmbeddingConfig{
			Provider:      "openai",
			APIKeyEnv:     "OPENAI_API_KEY",
			BaseURL:       "https://api.openai.com/v1",
			Model:         "text-embedding-3-small",
			Dimensions:    384,
			BatchSize:     10,
			TimeoutSecs:   60,
			MaxInputChars: 2048,
		},
		Chunker: ChunkerConfig{
			ChunkSize: 500,
			Overlap:   100,
		},
		Retrieval: RetrievalConfig{
			TopK:          5,
			RAGThreshold:  2000,
			FallbackChars: 5000,
		},
		Store: StoreConfig{
			TTLMinutes:   60,
			SweepMinutes: 10,
		},
	}
}

// DefaultPath returns ~/.quill/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDirName, DefaultConfigFile), nil
}

// Load reads the configuration at path. A missing file is not an error:
// the defaults are returned. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
