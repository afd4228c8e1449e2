package cli

import (
	"fmt"
	"os"

	"github.com/inkforge-labs/quill-cli/internal/normalisers"
)

// readSample loads a writing sample and normalises it to plain prose.
func readSample(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return normalisers.NormaliseFile(path, string(data)), nil
}
