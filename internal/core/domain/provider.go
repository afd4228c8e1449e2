package domain

// EmbeddingProvider identifies which embedding backend to use.
type EmbeddingProvider string

// Supported embedding providers.
const (
	// ProviderOpenAI is the OpenAI API or any compatible server.
	ProviderOpenAI EmbeddingProvider = "openai"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama EmbeddingProvider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p EmbeddingProvider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderOllama:
		return true
	default:
		return false
	}
}
