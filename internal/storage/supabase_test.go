package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"quizai/internal/config"
	"quizai/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) *SupabaseStorage {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	storage, err := NewSupabaseStorage(config.StorageConfig{
		BaseURL:    server.URL,
		ServiceKey: "service-key",
		Bucket:     "course-materials",
	})
	require.NoError(t, err)
	return storage
}

func TestNewSupabaseStorage_MissingConfig(t *testing.T) {
	_, err := NewSupabaseStorage(config.StorageConfig{ServiceKey: "k", Bucket: "b"})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeConfiguration, domainErr.Code)

	_, err = NewSupabaseStorage(config.StorageConfig{BaseURL: "http://x", Bucket: "b"})
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeConfiguration, domainErr.Code)
}

func TestDownloadToLocal(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/course-materials/user-1/course-1/notes.txt", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.Write([]byte("lecture notes"))
	})

	path, err := storage.DownloadToLocal(context.Background(), "user-1/course-1/notes.txt")
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, ".txt", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lecture notes", string(data))
}

func TestDownloadToLocal_NotFound(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := storage.DownloadToLocal(context.Background(), "missing.pdf")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestDownloadToLocal_ServerError(t *testing.T) {
	storage := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := storage.DownloadToLocal(context.Background(), "notes.pdf")
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExtractionFailed, domainErr.Code)
}
