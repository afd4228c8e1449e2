package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	promptIntent    string
	promptDraftFile string
	promptSession   string
)

var promptCmd = &cobra.Command{
	Use:   "prompt [sample-file]",
	Short: "Compile a writing sample into style instructions",
	Long: `Analyses a writing sample and renders its linguistic DNA as plain-text
style instructions suitable for a text generation service.

With --draft, the full generation prompt is assembled instead: style
instructions, the reference excerpts most relevant to the draft, and
the draft itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVarP(&promptIntent, "intent", "i", "", "task instruction appended to the prompt")
	promptCmd.Flags().StringVarP(&promptDraftFile, "draft", "d", "", "file containing a draft to build the full generation prompt for")
	promptCmd.Flags().StringVarP(&promptSession, "session", "s", "", "session id for embedding reuse (default: random)")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	sample, err := readSample(args[0])
	if err != nil {
		return err
	}

	d := styleService.Analyze(sample)
	stylePrompt := styleService.CompilePrompt(d, promptIntent)

	if promptDraftFile == "" {
		cmd.Print(stylePrompt)
		return nil
	}

	draft, err := readSample(promptDraftFile)
	if err != nil {
		return err
	}

	sessionID := promptSession
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result := retrievalService.BuildContext(cmd.Context(), sessionID, sample, draft)
	cmd.Print(styleService.ComposePrompt(stylePrompt, result.Context, draft))
	return nil
}
