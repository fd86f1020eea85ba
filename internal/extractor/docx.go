package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractFromDOCX reads the document structure of a .docx file and
// returns its text, one paragraph or table per line. Formatting is
// discarded.
func extractFromDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("DOCX parsing failed: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("DOCX parsing failed: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("DOCX parsing failed: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, item)
		}
	}
	return sb.String(), nil
}
