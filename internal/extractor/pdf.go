package extractor

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractFromPDF pulls the text layer out of a PDF file. Scanned PDFs
// without a text layer yield empty output, which the caller reports as an
// empty-content failure.
func extractFromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("PDF parsing failed: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("PDF parsing failed: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("PDF parsing failed: %w", err)
	}
	return buf.String(), nil
}
