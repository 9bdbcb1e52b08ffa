package storage

import (
	"context"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore persists uploaded bytes and returns a public URL for them.
type FileStore interface {
	Save(ctx context.Context, data []byte, mimeType string) (string, error)
}

// objectKey builds "<folder>/<yyyy>/<mm>/<uuid><ext>" for an upload.
func objectKey(mimeType string, now time.Time) string {
	folder := "files"
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		folder = "images"
	case strings.HasPrefix(mimeType, "video/"):
		folder = "videos"
	}
	return path.Join(folder, now.UTC().Format("2006/01"), uuid.NewString()+extensionFor(mimeType))
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
