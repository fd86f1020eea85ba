package extractor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quizai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses whitespace runs",
			input:    "hello   world\tagain",
			expected: "hello world again",
		},
		{
			name:     "double newline collapses to space",
			input:    "first\n\nsecond",
			expected: "first second",
		},
		{
			name:     "triple newline becomes paragraph break",
			input:    "first\n\n\nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "many newlines with spaces between become one break",
			input:    "first\n  \n \n   \nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "trims leading and trailing whitespace",
			input:    "  \n padded \n ",
			expected: "padded",
		},
		{
			name:     "whitespace only is empty",
			input:    " \n\t \n ",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestExtract_PlainTextByMimeType(t *testing.T) {
	path := writeTempFile(t, "notes.bin", "Alpha beta.\n\n\nGamma delta.")

	text, method, err := New().Extract(context.Background(), path, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionMethodPlainText, method)
	assert.Equal(t, "Alpha beta.\n\nGamma delta.", text)
}

func TestExtract_ExtensionFallback(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "fallback works")

	text, method, err := New().Extract(context.Background(), path, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionMethodPlainText, method)
	assert.Equal(t, "fallback works", text)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "photo.png", "not really an image")

	_, _, err := New().Extract(context.Background(), path, "image/png")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
}

func TestExtract_EmptyContent(t *testing.T) {
	path := writeTempFile(t, "blank.txt", "  \n \n\t ")

	_, method, err := New().Extract(context.Background(), path, "text/plain")
	require.Error(t, err)
	assert.Equal(t, domain.ExtractionMethodPlainText, method)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeEmptyContent, domainErr.Code)
}

func TestExtract_CorruptPDF(t *testing.T) {
	path := writeTempFile(t, "broken.pdf", "this is not a pdf")

	_, method, err := New().Extract(context.Background(), path, "application/pdf")
	require.Error(t, err)
	assert.Equal(t, domain.ExtractionMethodPDF, method)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeExtractionFailed, domainErr.Code)
}

func TestExtract_CancelledContext(t *testing.T) {
	path := writeTempFile(t, "notes.txt", "content")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New().Extract(ctx, path, "text/plain")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMethodFor(t *testing.T) {
	tests := []struct {
		mimeType string
		path     string
		expected string
	}{
		{"application/pdf", "x.bin", domain.ExtractionMethodPDF},
		{"text/plain", "x.bin", domain.ExtractionMethodPlainText},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "x.bin", domain.ExtractionMethodDOCX},
		{"application/octet-stream", "x.PDF", domain.ExtractionMethodPDF},
		{"", "x.docx", domain.ExtractionMethodDOCX},
		{"image/png", "x.png", ""},
		{"", "noextension", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, methodFor(tt.mimeType, tt.path), "mime=%s path=%s", tt.mimeType, tt.path)
	}
}
