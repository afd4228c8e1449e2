package dna

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_IdenticalTextScoresPerfect(t *testing.T) {
	analyzer := NewAnalyzer()
	scorer := NewScorer(analyzer)

	text := "The craft of writing rewards patience above all else. Good prose is rewritten, not written. " +
		"Every serious draft teaches the writer something new. The craft of writing rewards patience above all else."

	ref := analyzer.Analyze(text)
	got := scorer.Score(ref, text)

	assert.Equal(t, 100, got.Total)
	assert.Empty(t, got.Deductions)
}

func TestScorer_CadenceDriftIsCappedAt40(t *testing.T) {
	analyzer := NewAnalyzer()
	scorer := NewScorer(analyzer)

	// Reference averages ~4 words per sentence; generated averages ~40.
	ref := analyzer.Analyze(strings.Repeat("Short and sweet here. ", 20))
	long := strings.Repeat("word ", 39) + "ending. "
	got := scorer.Score(ref, strings.Repeat(long, 5))

	require.NotEmpty(t, got.Deductions)
	var cadence float64
	for _, d := range got.Deductions {
		if d.Label == "sentence length drift" {
			cadence = d.Points
		}
	}
	assert.Equal(t, 40.0, cadence)
}

func TestScorer_MissingSignaturePhrasesDeducts(t *testing.T) {
	analyzer := NewAnalyzer()
	scorer := NewScorer(analyzer)

	ref := analyzer.Analyze(strings.Repeat("Quality content wins attention every single time. ", 4))
	require.NotEmpty(t, ref.SignaturePhrases)

	generated := "Completely different material discussing unrelated topics across several additional ordinary sentences."
	got := scorer.Score(ref, generated)

	var found bool
	for _, d := range got.Deductions {
		if d.Label == "signature phrases absent" {
			found = true
			assert.Equal(t, 10.0, d.Points)
		}
	}
	assert.True(t, found, "expected a signature phrase deduction")
}

func TestScorer_PhraseMatchIsCaseInsensitive(t *testing.T) {
	analyzer := NewAnalyzer()
	scorer := NewScorer(analyzer)

	ref := analyzer.Analyze(strings.Repeat("Quality content wins attention every single time. ", 4))
	require.NotEmpty(t, ref.SignaturePhrases)

	generated := "QUALITY CONTENT remains the focus of this otherwise different report about publishing workflows today."
	got := scorer.Score(ref, generated)

	for _, d := range got.Deductions {
		assert.NotEqual(t, "signature phrases absent", d.Label)
	}
}

func TestScorer_ResultAlwaysWithinBounds(t *testing.T) {
	analyzer := NewAnalyzer()
	scorer := NewScorer(analyzer)

	ref := analyzer.Analyze(strings.Repeat("Short and sweet here. ", 20))
	generated := strings.Repeat("ORGANISATIONAL INFRASTRUCTURE NECESSITATES COMPREHENSIVE LONGITUDINAL DOCUMENTATION "+
		"ACROSS EVERY CONCEIVABLE INTERDEPARTMENTAL COORDINATION BOUNDARY WITHOUT ANY TERMINAL PUNCTUATION WHATSOEVER ", 3)

	got := scorer.Score(ref, generated)
	assert.GreaterOrEqual(t, got.Total, 0)
	assert.LessOrEqual(t, got.Total, 100)
	assert.GreaterOrEqual(t, len(got.Deductions), 3)
}
