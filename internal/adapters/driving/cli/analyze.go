package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/logger"
)

var (
	analyzeJSON  bool
	analyzeWatch bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [sample-file]",
	Short: "Extract a linguistic DNA from a writing sample",
	Long: `Analyses a writing sample and prints its linguistic DNA: tone,
cadence, vocabulary, formatting habits, signature phrases and
representative sentences.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the DNA as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "re-analyse whenever the file changes")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := analyzeFile(cmd, path); err != nil {
		return err
	}

	if analyzeWatch {
		return watchFile(cmd, path)
	}
	return nil
}

func analyzeFile(cmd *cobra.Command, path string) error {
	text, err := readSample(path)
	if err != nil {
		return err
	}

	d := styleService.Analyze(text)

	if analyzeJSON {
		return outputDNAJSON(cmd, d)
	}
	outputDNAReport(cmd, d)
	return nil
}

// watchFile re-analyses the sample whenever it is written to. Blocks until
// interrupted.
func watchFile(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	cmd.Println(mutedStyle.Render("Watching " + path + " (ctrl-c to stop)"))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cmd.Println()
				if err := analyzeFile(cmd, path); err != nil {
					logger.Error("Re-analyse failed: %v", err)
				}
				// Editors replace files on save; re-add to keep watching.
				_ = watcher.Add(path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func outputDNAJSON(cmd *cobra.Command, d domain.LinguisticDNA) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal DNA: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputDNAReport(cmd *cobra.Command, d domain.LinguisticDNA) {
	cmd.Println(titleStyle.Render("Linguistic DNA"))
	cmd.Println()

	cmd.Printf("%s %s %s\n", labelStyle.Render("Tone:"), d.Tone, mutedStyle.Render("("+d.Tone.Description()+")"))
	cmd.Printf("%s %.1f words/sentence (range %d-%d, %s variance)\n",
		labelStyle.Render("Cadence:"),
		d.Cadence.AvgSentenceLength, d.Cadence.MinSentenceLength, d.Cadence.MaxSentenceLength,
		d.Cadence.Variance)
	cmd.Printf("%s %s complexity, %s jargon, %.0f%% unique words\n",
		labelStyle.Render("Vocabulary:"),
		d.Vocabulary.Complexity, d.Vocabulary.JargonLevel, d.Vocabulary.UniqueWordRatio*100)
	cmd.Printf("%s %s casing, %s punctuation, %s emoji\n",
		labelStyle.Render("Formatting:"),
		d.Formatting.Casing, d.Formatting.PunctuationDensity, d.Formatting.EmojiFrequency)

	if d.Formatting.UsesOxfordComma != nil && *d.Formatting.UsesOxfordComma {
		cmd.Println(mutedStyle.Render("  uses the Oxford comma"))
	}
	if d.Formatting.DoubleSpacing {
		cmd.Println(mutedStyle.Render("  double-spaces after sentences"))
	}

	if len(d.SignaturePhrases) > 0 {
		cmd.Println()
		cmd.Println(labelStyle.Render("Signature phrases:"))
		for _, p := range d.SignaturePhrases {
			cmd.Printf("  - %q\n", p)
		}
	}

	if len(d.TopWords) > 0 {
		cmd.Println()
		cmd.Printf("%s %s\n", labelStyle.Render("Top words:"), strings.Join(d.TopWords, ", "))
	}

	if len(d.SampleSentences) > 0 {
		cmd.Println()
		cmd.Println(labelStyle.Render("Representative sentences:"))
		for _, s := range d.SampleSentences {
			cmd.Printf("  %s\n", mutedStyle.Render(s))
		}
	}
}
