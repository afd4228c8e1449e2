package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

var (
	contextDraftFile string
	contextSession   string
	contextTopK      int
	contextJSON      bool
)

var contextCmd = &cobra.Command{
	Use:   "context [reference-file]",
	Short: "Retrieve the reference excerpts most relevant to a draft",
	Long: `Builds the style context a generation prompt would carry: the parts of
the reference document most similar to the draft. Short references are
returned whole; long ones are chunked, embedded and ranked. Reuse the
same --session id across calls to skip re-embedding the reference.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().StringVarP(&contextDraftFile, "draft", "d", "", "file containing the draft to match against (required)")
	contextCmd.Flags().StringVarP(&contextSession, "session", "s", "", "session id for embedding reuse (default: random)")
	contextCmd.Flags().IntVarP(&contextTopK, "top-k", "k", 0, "number of chunks to retrieve (default from config)")
	contextCmd.Flags().BoolVar(&contextJSON, "json", false, "output the result as JSON")
	_ = contextCmd.MarkFlagRequired("draft")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	reference, err := readSample(args[0])
	if err != nil {
		return err
	}

	draft, err := readSample(contextDraftFile)
	if err != nil {
		return err
	}

	sessionID := contextSession
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	svc := retrievalService
	if contextTopK > 0 {
		svc = buildRetrievalService(contextTopK)
	}

	result := svc.BuildContext(cmd.Context(), sessionID, reference, draft)

	if contextJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputContext(cmd, sessionID, result)
	return nil
}

func outputContext(cmd *cobra.Command, sessionID string, result domain.RetrievalResult) {
	cmd.Printf("%s %s\n", labelStyle.Render("Session:"), sessionID)
	cmd.Printf("%s %s\n", labelStyle.Render("Source:"), result.Source)
	if result.ChunkCount > 0 {
		cmd.Printf("%s %d\n", labelStyle.Render("Chunks:"), result.ChunkCount)
	}
	if result.Degraded {
		cmd.Println(warningStyle.Render(fmt.Sprintf("Degraded: %s", result.Reason)))
	}
	cmd.Println()
	cmd.Println(result.Context)
}
