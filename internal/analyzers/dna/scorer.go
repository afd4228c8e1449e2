package dna

import (
	"math"
	"strings"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// Scoring weights. The cadence penalty is proportional; the rest are flat.
const (
	maxCadencePenalty     = 40.0
	pointsPerWordOfDrift  = 2.0
	complexityPenalty     = 15.0
	jargonPenalty         = 15.0
	casingPenalty         = 10.0
	punctuationPenalty    = 10.0
	missingPhrasesPenalty = 10.0
)

// Scorer measures how faithfully generated text reproduces a reference
// linguistic DNA.
type Scorer struct {
	analyzer *Analyzer
}

// NewScorer creates a scorer backed by the given analyzer.
func NewScorer(analyzer *Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score re-derives a DNA from the generated text and compares it against
// the reference, starting from 100 and deducting per mismatched trait.
// The result is clamped to [0, 100] and rounded.
func (s *Scorer) Score(ref domain.LinguisticDNA, generated string) domain.FidelityScore {
	gen := s.analyzer.Analyze(generated)

	score := 100.0
	var deductions []domain.Deduction

	drift := math.Abs(ref.Cadence.AvgSentenceLength - gen.Cadence.AvgSentenceLength)
	if penalty := math.Min(maxCadencePenalty, drift*pointsPerWordOfDrift); penalty > 0 {
		score -= penalty
		deductions = append(deductions, domain.Deduction{
			Label:  "sentence length drift",
			Points: penalty,
		})
	}

	if ref.Vocabulary.Complexity != gen.Vocabulary.Complexity {
		score -= complexityPenalty
		deductions = append(deductions, domain.Deduction{
			Label:  "vocabulary complexity",
			Points: complexityPenalty,
		})
	}
	if ref.Vocabulary.JargonLevel != gen.Vocabulary.JargonLevel {
		score -= jargonPenalty
		deductions = append(deductions, domain.Deduction{
			Label:  "jargon level",
			Points: jargonPenalty,
		})
	}

	if ref.Formatting.Casing != gen.Formatting.Casing {
		score -= casingPenalty
		deductions = append(deductions, domain.Deduction{
			Label:  "casing",
			Points: casingPenalty,
		})
	}
	if ref.Formatting.PunctuationDensity != gen.Formatting.PunctuationDensity {
		score -= punctuationPenalty
		deductions = append(deductions, domain.Deduction{
			Label:  "punctuation density",
			Points: punctuationPenalty,
		})
	}

	if len(ref.SignaturePhrases) > 0 && !anyPhrasePresent(ref.SignaturePhrases, generated) {
		score -= missingPhrasesPenalty
		deductions = append(deductions, domain.Deduction{
			Label:  "signature phrases absent",
			Points: missingPhrasesPenalty,
		})
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.FidelityScore{
		Total:      int(math.Round(score)),
		Deductions: deductions,
	}
}

// anyPhrasePresent reports whether at least one reference phrase occurs in
// the generated text, case-insensitively.
func anyPhrasePresent(phrases []string, text string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
