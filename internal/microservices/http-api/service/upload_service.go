package service

import (
	"context"
	"net/http"
	"strings"

	"kushfilms/internal/storage"

	"github.com/docker/go-units"
	"go.uber.org/zap"
)

type UploadService interface {
	// Upload stores an image or video and returns its public URL.
	Upload(ctx context.Context, data []byte, mimeType string) (string, error)
	MaxBytes() int64
}

type uploadService struct {
	files    storage.FileStore
	maxBytes int64
	logger   *zap.Logger
}

func NewUploadService(files storage.FileStore, maxBytes int64, logger *zap.Logger) UploadService {
	return &uploadService{files: files, maxBytes: maxBytes, logger: logger}
}

func (s *uploadService) MaxBytes() int64 {
	return s.maxBytes
}

func (s *uploadService) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", invalidInput("file is empty")
	}
	if int64(len(data)) > s.maxBytes {
		return "", invalidInput("file exceeds the %s limit", units.HumanSize(float64(s.maxBytes)))
	}

	mimeType = mediaType(mimeType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mediaType(http.DetectContentType(data))
	}
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		return "", invalidInput("only image and video files are allowed")
	}

	url, err := s.files.Save(ctx, data, mimeType)
	if err != nil {
		return "", err
	}
	s.logger.Info("file uploaded", zap.String("mime_type", mimeType), zap.Int("bytes", len(data)), zap.String("url", url))
	return url, nil
}

// mediaType strips parameters such as "; charset=utf-8".
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}
