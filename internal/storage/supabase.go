// Package storage downloads uploaded course materials from the object
// store so the extractor can read them from the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quizai/internal/config"
	"quizai/internal/domain"
	"quizai/internal/logger"

	"go.uber.org/zap"
)

// SupabaseStorage implements domain.ObjectStorage against the Supabase
// storage HTTP API using the service-role key.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

// NewSupabaseStorage creates a new SupabaseStorage for the configured bucket.
func NewSupabaseStorage(cfg config.StorageConfig) (*SupabaseStorage, error) {
	if cfg.BaseURL == "" {
		return nil, domain.NewConfigurationError("SUPABASE_URL is not configured")
	}
	if cfg.ServiceKey == "" {
		return nil, domain.NewConfigurationError("SUPABASE_SERVICE_KEY is not configured")
	}
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		bucket:     cfg.Bucket,
		client:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// DownloadToLocal implements domain.ObjectStorage. The object is streamed
// into a temporary file; the caller removes it when done.
func (s *SupabaseStorage) DownloadToLocal(ctx context.Context, storagePath string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, storagePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build storage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domain.NewExtractionError("Failed to download file from storage", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", domain.NewNotFoundError(fmt.Sprintf("Object %s not found in storage", storagePath))
	}
	if resp.StatusCode != http.StatusOK {
		return "", domain.NewExtractionError("Failed to download file from storage",
			fmt.Errorf("storage responded with status %d", resp.StatusCode))
	}

	// Keep the original extension so the extractor's fallback format
	// detection still works.
	tmp, err := os.CreateTemp("", "quizai-*"+filepath.Ext(storagePath))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", domain.NewExtractionError("Failed to write downloaded file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	logger.Get().Debug("downloaded object to local file",
		zap.String("storagePath", storagePath),
		zap.String("localPath", tmp.Name()))

	return tmp.Name(), nil
}
