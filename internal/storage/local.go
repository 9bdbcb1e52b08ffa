package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes files under a directory served at baseURL + "/uploads".
type LocalStore struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := objectKey(mimeType, s.now())
	full := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.baseURL + "/uploads/" + key, nil
}
