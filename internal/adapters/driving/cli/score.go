package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score [reference-file] [generated-file]",
	Short: "Score generated text against a reference voice",
	Long: `Analyses the reference sample, re-analyses the generated text and
reports a fidelity score from 0 to 100 with a breakdown of every
deduction.`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "output the score as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	reference, err := readSample(args[0])
	if err != nil {
		return err
	}

	generated, err := readSample(args[1])
	if err != nil {
		return err
	}

	ref := styleService.Analyze(reference)
	score := styleService.Score(ref, generated)

	if scoreJSON {
		data, err := json.MarshalIndent(score, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputScore(cmd, score)
	return nil
}

func outputScore(cmd *cobra.Command, score domain.FidelityScore) {
	style := successStyle
	switch {
	case score.Total < 50:
		style = errorStyle
	case score.Total < 80:
		style = warningStyle
	}

	cmd.Printf("%s %s\n", labelStyle.Render("Fidelity:"), style.Render(fmt.Sprintf("%d/100", score.Total)))

	if len(score.Deductions) == 0 {
		cmd.Println(mutedStyle.Render("No deductions."))
		return
	}

	cmd.Println()
	for _, d := range score.Deductions {
		cmd.Printf("  -%.0f  %s\n", d.Points, d.Label)
	}
}
