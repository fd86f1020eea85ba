// Package extractor turns uploaded course documents into normalized plain
// text. Format selection uses the declared MIME type first and falls back
// to the filename extension; unsupported formats fail before any parsing
// is attempted.
package extractor

import (
	"context"
	"path/filepath"
	"strings"

	"quizai/internal/domain"
)

const (
	mimePDF       = "application/pdf"
	mimePlainText = "text/plain"
	mimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor implements domain.TextExtractor for PDF, DOCX and plain-text
// documents.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

var _ domain.TextExtractor = (*Extractor)(nil)

// Extract reads the document at path and returns its normalized text and
// the extraction method tag. Empty or whitespace-only results are an
// extraction failure, never a successful empty text.
func (e *Extractor) Extract(ctx context.Context, path, mimeType string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	method := methodFor(mimeType, path)
	if method == "" {
		return "", "", domain.NewUnsupportedFormatError("Unsupported file type. Only PDF, TXT, and DOCX files are supported.")
	}

	var raw string
	var err error
	switch method {
	case domain.ExtractionMethodPDF:
		raw, err = extractFromPDF(path)
	case domain.ExtractionMethodDOCX:
		raw, err = extractFromDOCX(path)
	case domain.ExtractionMethodPlainText:
		raw, err = extractFromTXT(path)
	}
	if err != nil {
		return "", method, domain.NewExtractionError("Failed to extract text", err)
	}

	text := Normalize(raw)
	if text == "" {
		return "", method, domain.NewEmptyContentError("No text content could be extracted from the file.")
	}

	return text, method, nil
}

// methodFor resolves the extraction method from the MIME type, falling
// back to the file extension. Empty string means unsupported.
func methodFor(mimeType, path string) string {
	switch mimeType {
	case mimePDF:
		return domain.ExtractionMethodPDF
	case mimePlainText:
		return domain.ExtractionMethodPlainText
	case mimeDOCX:
		return domain.ExtractionMethodDOCX
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return domain.ExtractionMethodPDF
	case ".txt":
		return domain.ExtractionMethodPlainText
	case ".docx":
		return domain.ExtractionMethodDOCX
	}
	return ""
}
