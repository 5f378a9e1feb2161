package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadResult mirrors what the frontend expects back from a file upload.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// FileStorage is the small surface the document services need: store bytes
// under a folder, get back {url, path}, delete by path.
type FileStorage interface {
	Upload(data []byte, folder, filename string) (*UploadResult, error)
	Delete(path string) error
}

// LocalStorage keeps files on disk under a base directory that the server
// exposes statically at /uploads.
type LocalStorage struct {
	baseDir string
	baseURL string
}

func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalStorage) Upload(data []byte, folder, filename string) (*UploadResult, error) {
	// Prefix with a UUID so two uploads with the same name never collide.
	safeName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	relPath := filepath.Join(folder, safeName)

	fullDir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(fullDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	fullPath := filepath.Join(s.baseDir, relPath)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:  fmt.Sprintf("%s/uploads/%s", s.baseURL, filepath.ToSlash(relPath)),
		Path: relPath,
	}, nil
}

func (s *LocalStorage) Delete(path string) error {
	// Refuse anything that escapes the base directory.
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid storage path: %s", path)
	}
	err := os.Remove(filepath.Join(s.baseDir, clean))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
