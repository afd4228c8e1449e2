// Package dna extracts quantitative style metrics ("linguistic DNA") from
// prose, renders them into generation instructions, and scores how closely
// generated text matches a reference profile.
//
// The heuristics here are deliberately simple and threshold-driven. The
// prompt compiler and fidelity scorer are calibrated against these exact
// constants, so the thresholds and the tone priority order are a contract,
// not an implementation detail.
package dna

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// minAnalyzableChars is the input length below which analysis is skipped and
// the fixed neutral profile returned instead.
const minAnalyzableChars = 50

// Result list caps.
const (
	maxSignaturePhrases = 5
	maxTopWords         = 10
	maxSampleSentences  = 3
	minPhraseFrequency  = 2
)

// energeticEmoji are literals that force the energetic tone regardless of
// overall emoji frequency.
var energeticEmoji = []string{"🔥", "🚀", "💪", "✨", "🎉"}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	wordRe          = regexp.MustCompile(`[a-z0-9']+`)
	// Matches a list written without an Oxford comma cue: ", word and word".
	// Its presence proves the habit; its absence proves nothing, hence the
	// tri-state field on Formatting.
	oxfordRe = regexp.MustCompile(`,\s+\w+\s+and\s+\w+`)
)

// Analyzer derives a LinguisticDNA from raw text. It is stateless apart
// from the fixed stop-word set, so one instance can be shared freely.
type Analyzer struct{}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// DefaultDNA is the fixed neutral profile returned for inputs too short to
// carry meaningful statistics.
func DefaultDNA() domain.LinguisticDNA {
	return domain.LinguisticDNA{
		Tone: domain.ToneNeutral,
		Cadence: domain.Cadence{
			AvgSentenceLength: 15,
			Variance:          domain.VarianceMedium,
			MinSentenceLength: 10,
			MaxSentenceLength: 20,
		},
		Vocabulary: domain.Vocabulary{
			Complexity:      domain.ComplexityModerate,
			JargonLevel:     domain.JargonLow,
			UniqueWordRatio: 0.5,
		},
		Formatting: domain.Formatting{
			Casing:             domain.CasingSentence,
			PunctuationDensity: domain.PunctuationStandard,
			EmojiFrequency:     domain.EmojiNone,
		},
		SignaturePhrases: []string{},
		TopWords:         []string{},
		SampleSentences:  []string{},
	}
}

// Analyze computes the full linguistic DNA of a writing sample. It is a
// pure, deterministic function of the input text.
func (a *Analyzer) Analyze(text string) domain.LinguisticDNA {
	if len(strings.TrimSpace(text)) < minAnalyzableChars {
		return DefaultDNA()
	}

	sentences := splitSentences(text)
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	// Raw whitespace tokens keep punctuation attached; signature phrases
	// need it so question-bearing phrases stay detectable.
	tokens := strings.Fields(strings.ToLower(text))

	cadence := analyzeCadence(sentences)
	vocabulary := analyzeVocabulary(words)
	formatting := analyzeFormatting(text, len(tokens))
	phrases := signaturePhrases(tokens)
	topWords := topWords(words)
	samples := sampleSentences(sentences)
	tone := deriveTone(text, cadence, vocabulary, formatting, phrases)

	return domain.LinguisticDNA{
		Tone:             tone,
		Cadence:          cadence,
		Vocabulary:       vocabulary,
		Formatting:       formatting,
		SignaturePhrases: phrases,
		TopWords:         topWords,
		SampleSentences:  samples,
	}
}

func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		if s := strings.TrimSpace(text); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func analyzeCadence(sentences []string) domain.Cadence {
	counts := make([]int, len(sentences))
	total := 0
	minLen, maxLen := math.MaxInt, 0
	for i, s := range sentences {
		n := len(strings.Fields(s))
		counts[i] = n
		total += n
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}

	avg := float64(total) / float64(len(counts))

	var sumSq float64
	for _, n := range counts {
		d := float64(n) - avg
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(counts)))

	variance := domain.VarianceHigh
	switch {
	case stddev < 3:
		variance = domain.VarianceLow
	case stddev < 7:
		variance = domain.VarianceMedium
	}

	return domain.Cadence{
		AvgSentenceLength: avg,
		Variance:          variance,
		MinSentenceLength: minLen,
		MaxSentenceLength: maxLen,
	}
}

func analyzeVocabulary(words []string) domain.Vocabulary {
	if len(words) == 0 {
		return domain.Vocabulary{
			Complexity:  domain.ComplexitySimple,
			JargonLevel: domain.JargonNone,
		}
	}

	unique := make(map[string]struct{})
	totalLen := 0
	longWords := 0
	for _, w := range words {
		totalLen += len(w)
		if len(w) > 8 {
			longWords++
		}
		if !isStopWord(w) {
			unique[w] = struct{}{}
		}
	}

	meanLen := float64(totalLen) / float64(len(words))
	complexity := domain.ComplexityComplex
	switch {
	case meanLen < 4:
		complexity = domain.ComplexitySimple
	case meanLen < 5.5:
		complexity = domain.ComplexityModerate
	}

	longRatio := float64(longWords) / float64(len(words))
	jargon := domain.JargonHigh
	switch {
	case longRatio < 0.02:
		jargon = domain.JargonNone
	case longRatio < 0.08:
		jargon = domain.JargonLow
	case longRatio < 0.15:
		jargon = domain.JargonMedium
	}

	return domain.Vocabulary{
		Complexity:      complexity,
		JargonLevel:     jargon,
		UniqueWordRatio: float64(len(unique)) / float64(len(words)),
	}
}

func analyzeFormatting(text string, wordCount int) domain.Formatting {
	var upper, lower, punct, emoji int
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
		if strings.ContainsRune(".,!?;:", r) {
			punct++
		}
		if isEmoji(r) {
			emoji++
		}
	}

	casing := domain.CasingMixed
	switch {
	case upper == 0:
		casing = domain.CasingLowercase
	case lower == 0:
		casing = domain.CasingUppercase
	case float64(upper)/float64(upper+lower) < 0.05:
		casing = domain.CasingSentence
	}

	if wordCount == 0 {
		wordCount = 1
	}

	punctRatio := float64(punct) / float64(wordCount)
	punctuation := domain.PunctuationHeavy
	switch {
	case punctRatio < 0.3:
		punctuation = domain.PunctuationMinimal
	case punctRatio < 0.6:
		punctuation = domain.PunctuationStandard
	}

	emojiRatio := float64(emoji) / float64(wordCount)
	emojiLevel := domain.EmojiHigh
	switch {
	case emoji == 0:
		emojiLevel = domain.EmojiNone
	case emojiRatio < 0.02:
		emojiLevel = domain.EmojiLow
	case emojiRatio < 0.10:
		emojiLevel = domain.EmojiMedium
	}

	var oxford *bool
	if oxfordRe.MatchString(text) {
		t := true
		oxford = &t
	}

	return domain.Formatting{
		Casing:             casing,
		PunctuationDensity: punctuation,
		EmojiFrequency:     emojiLevel,
		UsesOxfordComma:    oxford,
		DoubleSpacing:      strings.Contains(text, "  "),
	}
}

func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF)
}

// signaturePhrases collects 2- to 4-token contiguous phrases that recur at
// least twice and do not open with a stop word. Ties are broken by first
// appearance.
func signaturePhrases(tokens []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			lead := strings.TrimFunc(tokens[i], func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			})
			if lead == "" || isStopWord(lead) {
				continue
			}
			phrase := strings.Join(tokens[i:i+n], " ")
			if _, seen := counts[phrase]; !seen {
				firstSeen[phrase] = order
				order++
			}
			counts[phrase]++
		}
	}

	candidates := make([]string, 0, len(counts))
	for phrase, c := range counts {
		if c >= minPhraseFrequency {
			candidates = append(candidates, phrase)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > maxSignaturePhrases {
		candidates = candidates[:maxSignaturePhrases]
	}
	return candidates
}

// topWords returns the most frequent non-stop words longer than two
// characters, ties broken by first appearance.
func topWords(words []string) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, w := range words {
		if len(w) <= 2 || isStopWord(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			firstSeen[w] = order
			order++
		}
		counts[w]++
	}

	out := make([]string, 0, len(counts))
	for w := range counts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return firstSeen[out[i]] < firstSeen[out[j]]
	})

	if len(out) > maxTopWords {
		out = out[:maxTopWords]
	}
	return out
}

// sampleSentences picks up to one short, one medium and one long example
// sentence, each from the middle of its length bucket.
func sampleSentences(sentences []string) []string {
	var short, medium, long []string
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if len(s) <= 20 || n <= 5 {
			continue
		}
		switch {
		case n < 10:
			short = append(short, s)
		case n < 20:
			medium = append(medium, s)
		default:
			long = append(long, s)
		}
	}

	samples := make([]string, 0, maxSampleSentences)
	for _, bucket := range [][]string{short, medium, long} {
		if len(bucket) > 0 {
			samples = append(samples, bucket[len(bucket)/2])
		}
	}
	return samples
}

// deriveTone applies the tone priority chain. The order is a contract:
// emoji beats vocabulary beats cadence beats phrasing.
func deriveTone(
	text string,
	cadence domain.Cadence,
	vocabulary domain.Vocabulary,
	formatting domain.Formatting,
	phrases []string,
) domain.Tone {
	if formatting.EmojiFrequency == domain.EmojiHigh || containsEnergeticEmoji(text) {
		return domain.ToneEnergetic
	}
	if vocabulary.Complexity == domain.ComplexityComplex || formatting.Casing == domain.CasingSentence {
		return domain.ToneProfessional
	}
	if cadence.AvgSentenceLength < 10 && formatting.PunctuationDensity == domain.PunctuationMinimal {
		return domain.ToneCasual
	}
	for _, p := range phrases {
		if strings.Contains(p, "?") {
			return domain.ToneConversational
		}
	}
	return domain.ToneNeutral
}

func containsEnergeticEmoji(text string) bool {
	for _, e := range energeticEmoji {
		if strings.Contains(text, e) {
			return true
		}
	}
	return false
}
