package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_StripsFormatting(t *testing.T) {
	n := New()

	input := "# Weekly Update\n\n" +
		"This week **shipping** went well. See [the report](https://example.com/r) for details.\n\n" +
		"- first item\n" +
		"- second item\n\n" +
		"> quoted aside\n"

	got := n.Normalise(input)

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "**")
	assert.NotContains(t, got, "](")
	assert.NotContains(t, got, "- ")
	assert.NotContains(t, got, ">")
	assert.Contains(t, got, "Weekly Update")
	assert.Contains(t, got, "the report")
	assert.Contains(t, got, "first item")
}

func TestNormalise_DropsCodeBlocks(t *testing.T) {
	n := New()

	input := "Prose before.\n\n```go\nfunc main() {}\n```\n\nProse after with `inline code` too."
	got := n.Normalise(input)

	assert.NotContains(t, got, "func main")
	assert.NotContains(t, got, "inline code")
	assert.Contains(t, got, "Prose before.")
	assert.Contains(t, got, "Prose after")
}

func TestNormalise_CollapsesBlankLines(t *testing.T) {
	n := New()

	got := n.Normalise("one\n\n\n\n\ntwo")
	assert.Equal(t, "one\n\ntwo", got)
}

func TestSupportedExtensions(t *testing.T) {
	assert.Contains(t, New().SupportedExtensions(), ".md")
}
