// Package plaintext is the fallback normaliser for writing samples.
package plaintext

import (
	"regexp"
	"strings"
)

// Normaliser handles plain text samples.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

var trailingSpaceRe = regexp.MustCompile(`(?m)[ \t]+$`)

// Normalise unifies line endings and strips trailing whitespace. Double
// spaces inside lines are kept: they are a formatting habit the style
// analysis measures.
func (n *Normaliser) Normalise(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = trailingSpaceRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
