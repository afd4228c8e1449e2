package dna

import (
	"fmt"
	"strings"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// CompilePrompt renders a linguistic DNA into style instructions for a text
// generation service. It is a pure template concern: no network, no state.
// Fields that are empty or unknown are omitted rather than rendered blank.
func CompilePrompt(d domain.LinguisticDNA, intent string) string {
	var b strings.Builder

	b.WriteString("You are ghostwriting for an author. Reproduce their voice exactly, using the profile below.\n")

	fmt.Fprintf(&b, "\nTONE:\n- Write in a %s tone.\n", d.Tone)

	b.WriteString("\nCADENCE:\n")
	fmt.Fprintf(&b, "- Aim for an average sentence length of about %.0f words (observed range %d-%d).\n",
		d.Cadence.AvgSentenceLength, d.Cadence.MinSentenceLength, d.Cadence.MaxSentenceLength)
	fmt.Fprintf(&b, "- Keep sentence length variation %s.\n", d.Cadence.Variance)

	b.WriteString("\nVOCABULARY:\n")
	fmt.Fprintf(&b, "- Use %s vocabulary with %s jargon.\n", d.Vocabulary.Complexity, d.Vocabulary.JargonLevel)
	fmt.Fprintf(&b, "- Lexical variety: roughly %.0f%% of words should be unique.\n", d.Vocabulary.UniqueWordRatio*100)

	b.WriteString("\nFORMATTING:\n")
	fmt.Fprintf(&b, "- Casing: %s. Punctuation: %s. Emoji usage: %s.\n",
		d.Formatting.Casing, d.Formatting.PunctuationDensity, d.Formatting.EmojiFrequency)
	if d.Formatting.UsesOxfordComma != nil && *d.Formatting.UsesOxfordComma {
		b.WriteString("- Use the Oxford comma in lists.\n")
	}
	if d.Formatting.DoubleSpacing {
		b.WriteString("- Put two spaces after each sentence.\n")
	}

	if len(d.SignaturePhrases) > 0 {
		b.WriteString("\nSIGNATURE PHRASES (work these in occasionally, never in every sentence):\n")
		for _, p := range d.SignaturePhrases {
			fmt.Fprintf(&b, "- %q\n", p)
		}
	}

	if len(d.SampleSentences) > 0 {
		b.WriteString("\nEXAMPLE SENTENCES FROM THE AUTHOR:\n")
		for _, s := range d.SampleSentences {
			fmt.Fprintf(&b, "- %q\n", s)
		}
	}

	if intent != "" {
		fmt.Fprintf(&b, "\nTASK:\n%s\n", intent)
	}

	b.WriteString("\nReturn only the rewritten text. No preamble, no commentary, no explanations.\n")

	return b.String()
}
