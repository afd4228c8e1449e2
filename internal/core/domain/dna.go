package domain

// Tone is the categorical label derived from a writing sample.
type Tone string

// Available tones, in derivation priority order.
const (
	// ToneEnergetic is driven by emoji usage.
	ToneEnergetic Tone = "energetic"

	// ToneProfessional is driven by complex vocabulary or sentence casing.
	ToneProfessional Tone = "professional"

	// ToneCasual is driven by short sentences with minimal punctuation.
	ToneCasual Tone = "casual"

	// ToneConversational is driven by question-bearing signature phrases.
	ToneConversational Tone = "conversational"

	// ToneNeutral is the fallback when no other rule matches.
	ToneNeutral Tone = "neutral"
)

// IsValid returns true if the tone is recognised.
func (t Tone) IsValid() bool {
	switch t {
	case ToneEnergetic, ToneProfessional, ToneCasual, ToneConversational, ToneNeutral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Tone) String() string {
	return string(t)
}

// Description returns a human-readable description of the tone.
func (t Tone) Description() string {
	switch t {
	case ToneEnergetic:
		return "Energetic (emoji-heavy, upbeat)"
	case ToneProfessional:
		return "Professional (complex vocabulary, formal casing)"
	case ToneCasual:
		return "Casual (short sentences, light punctuation)"
	case ToneConversational:
		return "Conversational (question-driven)"
	case ToneNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// VarianceLevel classifies the spread of sentence lengths.
type VarianceLevel string

// Variance levels, by standard deviation of words per sentence.
const (
	VarianceLow    VarianceLevel = "low"    // < 3
	VarianceMedium VarianceLevel = "medium" // < 7
	VarianceHigh   VarianceLevel = "high"   // >= 7
)

// IsValid returns true if the variance level is recognised.
func (v VarianceLevel) IsValid() bool {
	switch v {
	case VarianceLow, VarianceMedium, VarianceHigh:
		return true
	default:
		return false
	}
}

// ComplexityLevel classifies vocabulary by mean word length.
type ComplexityLevel string

// Complexity levels.
const (
	ComplexitySimple   ComplexityLevel = "simple"   // < 4
	ComplexityModerate ComplexityLevel = "moderate" // < 5.5
	ComplexityComplex  ComplexityLevel = "complex"  // >= 5.5
)

// IsValid returns true if the complexity level is recognised.
func (c ComplexityLevel) IsValid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return true
	default:
		return false
	}
}

// JargonLevel classifies the share of long (>8 character) words.
type JargonLevel string

// Jargon levels, bucketed at 2%, 8% and 15%.
const (
	JargonNone   JargonLevel = "none"
	JargonLow    JargonLevel = "low"
	JargonMedium JargonLevel = "medium"
	JargonHigh   JargonLevel = "high"
)

// IsValid returns true if the jargon level is recognised.
func (j JargonLevel) IsValid() bool {
	switch j {
	case JargonNone, JargonLow, JargonMedium, JargonHigh:
		return true
	default:
		return false
	}
}

// CasingStyle classifies how the author uses letter case.
type CasingStyle string

// Casing styles.
const (
	CasingLowercase CasingStyle = "lowercase"
	CasingUppercase CasingStyle = "uppercase"
	CasingSentence  CasingStyle = "sentence"
	CasingMixed     CasingStyle = "mixed"
)

// IsValid returns true if the casing style is recognised.
func (c CasingStyle) IsValid() bool {
	switch c {
	case CasingLowercase, CasingUppercase, CasingSentence, CasingMixed:
		return true
	default:
		return false
	}
}

// PunctuationLevel classifies punctuation marks per word.
type PunctuationLevel string

// Punctuation levels, bucketed at 0.3 and 0.6 marks per word.
const (
	PunctuationMinimal  PunctuationLevel = "minimal"
	PunctuationStandard PunctuationLevel = "standard"
	PunctuationHeavy    PunctuationLevel = "heavy"
)

// IsValid returns true if the punctuation level is recognised.
func (p PunctuationLevel) IsValid() bool {
	switch p {
	case PunctuationMinimal, PunctuationStandard, PunctuationHeavy:
		return true
	default:
		return false
	}
}

// EmojiLevel classifies emoji code points per word.
type EmojiLevel string

// Emoji levels. Zero emoji is "none"; otherwise bucketed at 2% and 10%.
const (
	EmojiNone   EmojiLevel = "none"
	EmojiLow    EmojiLevel = "low"
	EmojiMedium EmojiLevel = "medium"
	EmojiHigh   EmojiLevel = "high"
)

// IsValid returns true if the emoji level is recognised.
func (e EmojiLevel) IsValid() bool {
	switch e {
	case EmojiNone, EmojiLow, EmojiMedium, EmojiHigh:
		return true
	default:
		return false
	}
}

// Cadence describes sentence rhythm.
type Cadence struct {
	// AvgSentenceLength is the mean number of words per sentence.
	AvgSentenceLength float64 `json:"avgSentenceLength"`

	// Variance classifies sentence length spread.
	Variance VarianceLevel `json:"variance"`

	// MinSentenceLength is the shortest sentence, in words.
	MinSentenceLength int `json:"minSentenceLength"`

	// MaxSentenceLength is the longest sentence, in words.
	MaxSentenceLength int `json:"maxSentenceLength"`
}

// Vocabulary describes word choice.
type Vocabulary struct {
	// Complexity classifies mean word length.
	Complexity ComplexityLevel `json:"complexity"`

	// JargonLevel classifies the share of long words.
	JargonLevel JargonLevel `json:"jargonLevel"`

	// UniqueWordRatio is unique non-stop words over total words.
	UniqueWordRatio float64 `json:"uniqueWordRatio"`
}

// Formatting describes mechanical habits of the author.
type Formatting struct {
	// Casing classifies letter-case usage.
	Casing CasingStyle `json:"casing"`

	// PunctuationDensity classifies punctuation marks per word.
	PunctuationDensity PunctuationLevel `json:"punctuationDensity"`

	// EmojiFrequency classifies emoji per word.
	EmojiFrequency EmojiLevel `json:"emojiFrequency"`

	// UsesOxfordComma is true when an Oxford-comma pattern was found and
	// nil when unknown. The detector never proves a negative, so false is
	// never produced.
	UsesOxfordComma *bool `json:"usesOxfordComma"`

	// DoubleSpacing is true when two consecutive spaces appear anywhere.
	DoubleSpacing bool `json:"doubleSpacing"`
}

// LinguisticDNA is the full style profile extracted from a writing sample.
// It is an immutable value: computed fresh from text, never mutated.
type LinguisticDNA struct {
	// Tone is the derived categorical label.
	Tone Tone `json:"tone"`

	// Cadence describes sentence rhythm.
	Cadence Cadence `json:"cadence"`

	// Vocabulary describes word choice.
	Vocabulary Vocabulary `json:"vocabulary"`

	// Formatting describes mechanical habits.
	Formatting Formatting `json:"formatting"`

	// SignaturePhrases holds up to 5 recurring multi-word phrases.
	SignaturePhrases []string `json:"signaturePhrases"`

	// TopWords holds up to 10 most frequent non-stop words.
	TopWords []string `json:"topWords"`

	// SampleSentences holds up to 3 representative sentences.
	SampleSentences []string `json:"sampleSentences"`
}

// Deduction is one penalty applied while scoring style fidelity.
type Deduction struct {
	// Label names the mismatched trait.
	Label string `json:"label"`

	// Points is the penalty subtracted from the score.
	Points float64 `json:"points"`
}

// FidelityScore is the result of comparing generated text against a
// reference DNA.
type FidelityScore struct {
	// Total is the clamped, rounded score in [0, 100].
	Total int `json:"total"`

	// Deductions lists every penalty that was applied.
	Deductions []Deduction `json:"deductions,omitempty"`
}
