// Package normalisers turns writing samples into plain prose before style
// analysis. Formatting syntax would otherwise leak into the statistics:
// Markdown headings look like short sentences and emphasis markers inflate
// punctuation density.
package normalisers

import (
	"path/filepath"
	"strings"

	"github.com/inkforge-labs/quill-cli/internal/normalisers/markdown"
	"github.com/inkforge-labs/quill-cli/internal/normalisers/plaintext"
)

// Normaliser converts a raw sample into analysable prose.
type Normaliser interface {
	// Normalise returns the plain-prose form of the text.
	Normalise(text string) string

	// SupportedExtensions returns the file extensions this normaliser
	// handles, including the leading dot.
	SupportedExtensions() []string
}

// registry lists the available normalisers. The plaintext normaliser is
// the fallback and must come last.
var registry = []Normaliser{
	markdown.New(),
	plaintext.New(),
}

// ForPath selects a normaliser by file extension. Unknown extensions get
// the plaintext fallback.
func ForPath(path string) Normaliser {
	ext := strings.ToLower(filepath.Ext(path))
	for _, n := range registry {
		for _, supported := range n.SupportedExtensions() {
			if supported == ext {
				return n
			}
		}
	}
	return registry[len(registry)-1]
}

// NormaliseFile applies the extension-matched normaliser to the content.
func NormaliseFile(path, content string) string {
	return ForPath(path).Normalise(content)
}
