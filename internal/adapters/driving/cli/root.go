// Package cli provides the command-line interface for Quill.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/inkforge-labs/quill-cli/internal/adapters/driven/config/file"
	"github.com/inkforge-labs/quill-cli/internal/adapters/driven/embedding"
	"github.com/inkforge-labs/quill-cli/internal/adapters/driven/vectorstore/memory"
	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driving"
	"github.com/inkforge-labs/quill-cli/internal/core/services"
	"github.com/inkforge-labs/quill-cli/internal/logger"
	"github.com/inkforge-labs/quill-cli/internal/postprocessors/chunker"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag bool
	configFlag  string
)

// Services wired by initServices and shared by the commands.
var (
	cfg              file.Config
	retrievalService driving.RetrievalService
	styleService     driving.StyleService
	sessionStore     *memory.Store
	embedderSvc      driven.EmbeddingService
	chunkProc        *chunker.Processor
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Style-matched writing assistant",
	Long: `Quill analyses a writer's voice and keeps generated text in it.
It extracts a linguistic DNA from writing samples, compiles it into
style instructions, retrieves the most relevant excerpts for a draft,
and scores how faithfully generated text matches the original voice.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initServices(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if sessionStore != nil {
			sessionStore.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default ~/.quill/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices loads configuration and wires the service graph. The
// embedding service is optional: without an API key retrieval degrades to
// its raw-document fallback.
func initServices(_ *cobra.Command) error {
	logger.SetVerbose(verboseFlag)

	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	path := configFlag
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return err
		}
	}

	var err error
	cfg, err = file.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded config from %s", path)

	sessionStore = memory.New(
		memory.WithTTL(time.Duration(cfg.Store.TTLMinutes)*time.Minute),
		memory.WithSweepInterval(time.Duration(cfg.Store.SweepMinutes)*time.Minute),
	)
	sessionStore.Start()

	embedderSvc = newEmbedder()
	chunkProc = chunker.New(
		chunker.WithChunkSize(cfg.Chunker.ChunkSize),
		chunker.WithOverlap(cfg.Chunker.Overlap),
	)

	retrievalService = buildRetrievalService(cfg.Retrieval.TopK)
	styleService = services.NewStyleService()

	return nil
}

// buildRetrievalService assembles a retrieval service with the given topK.
func buildRetrievalService(topK int) driving.RetrievalService {
	return services.NewRetrievalService(
		chunkProc,
		embedderSvc,
		sessionStore,
		services.WithTopK(topK),
		services.WithRAGThreshold(cfg.Retrieval.RAGThreshold),
		services.WithFallbackChars(cfg.Retrieval.FallbackChars),
	)
}

// newEmbedder builds the configured embedding service, or returns a nil
// interface when no provider is usable.
func newEmbedder() driven.EmbeddingService {
	settings := embedding.Settings{
		Provider:      domain.EmbeddingProvider(cfg.Embedding.Provider),
		APIKey:        os.Getenv(cfg.Embedding.APIKeyEnv),
		BaseURL:       cfg.Embedding.BaseURL,
		Model:         cfg.Embedding.Model,
		Timeout:       time.Duration(cfg.Embedding.TimeoutSecs) * time.Second,
		Dimensions:    cfg.Embedding.Dimensions,
		BatchSize:     cfg.Embedding.BatchSize,
		MaxInputChars: cfg.Embedding.MaxInputChars,
	}

	svc, err := embedding.NewService(settings)
	if err != nil {
		logger.Warn("Embedding service unavailable: %v", err)
		return nil
	}
	if svc == nil {
		logger.Info("%s not set, retrieval will use the raw-document fallback", cfg.Embedding.APIKeyEnv)
		return nil
	}

	logger.Debug("Embedding with %s (%d dimensions)", svc.ModelName(), svc.Dimensions())
	return svc
}
