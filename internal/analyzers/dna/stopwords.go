package dna

// stopWords is the fixed English stop-word set used across vocabulary,
// phrase and top-word extraction. Kept small and stable: the thresholds in
// the analyzer are calibrated against this exact set.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "all": {}, "an": {}, "and": {}, "are": {}, "as": {},
	"at": {}, "be": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "had": {}, "has": {},
	"have": {}, "he": {}, "her": {}, "his": {}, "how": {}, "i": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "just": {}, "me": {}, "my": {},
	"no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "our": {}, "out": {},
	"she": {}, "so": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "these": {}, "they": {}, "this": {}, "those": {}, "to": {},
	"up": {}, "us": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
