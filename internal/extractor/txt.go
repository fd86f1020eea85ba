package extractor

import (
	"fmt"
	"os"
)

// extractFromTXT reads a plain-text file as UTF-8.
func extractFromTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("TXT file reading failed: %w", err)
	}
	return string(data), nil
}
