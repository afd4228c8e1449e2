package services

import (
	"strings"

	"github.com/inkforge-labs/quill-cli/internal/analyzers/dna"
	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driving"
)

// Ensure StyleService implements the interface.
var _ driving.StyleService = (*StyleService)(nil)

// StyleService analyses writing samples, renders style instructions and
// scores how faithfully generated text matches a reference profile.
type StyleService struct {
	analyzer *dna.Analyzer
	scorer   *dna.Scorer
}

// NewStyleService creates a style service.
func NewStyleService() *StyleService {
	analyzer := dna.NewAnalyzer()
	return &StyleService{
		analyzer: analyzer,
		scorer:   dna.NewScorer(analyzer),
	}
}

// Analyze derives a linguistic DNA from a writing sample.
func (s *StyleService) Analyze(text string) domain.LinguisticDNA {
	return s.analyzer.Analyze(text)
}

// CompilePrompt renders a DNA into style instructions.
func (s *StyleService) CompilePrompt(d domain.LinguisticDNA, intent string) string {
	return dna.CompilePrompt(d, intent)
}

// Score compares generated text against a reference DNA.
func (s *StyleService) Score(ref domain.LinguisticDNA, generated string) domain.FidelityScore {
	return s.scorer.Score(ref, generated)
}

// ComposePrompt assembles the final generation prompt: style instructions
// first, then the retrieved context, then the draft to rewrite. Empty
// sections are omitted.
func (s *StyleService) ComposePrompt(stylePrompt, retrievedContext, draft string) string {
	var b strings.Builder

	if stylePrompt != "" {
		b.WriteString(stylePrompt)
		b.WriteString("\n\n")
	}

	if retrievedContext != "" {
		b.WriteString("REFERENCE EXCERPTS FROM THE AUTHOR:\n")
		b.WriteString(retrievedContext)
		b.WriteString("\n\n")
	}

	b.WriteString("DRAFT:\n")
	b.WriteString(draft)
	b.WriteString("\n")

	return b.String()
}
