package driving

import "github.com/inkforge-labs/quill-cli/internal/core/domain"

// StyleService extracts, renders and scores linguistic style profiles.
type StyleService interface {
	// Analyze derives a linguistic DNA from a writing sample. Texts too
	// short to carry statistics yield a fixed neutral profile.
	Analyze(text string) domain.LinguisticDNA

	// CompilePrompt renders a DNA into style instructions for a text
	// generation service.
	CompilePrompt(dna domain.LinguisticDNA, intent string) string

	// Score compares generated text against a reference DNA and returns a
	// fidelity score in [0, 100] with its deductions.
	Score(ref domain.LinguisticDNA, generated string) domain.FidelityScore

	// ComposePrompt assembles the final generation prompt from the compiled
	// style instructions, the retrieved context and the user's draft.
	ComposePrompt(stylePrompt, retrievedContext, draft string) string
}
