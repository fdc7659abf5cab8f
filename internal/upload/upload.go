// Package upload validates and names files posted to the upload endpoint.
package upload

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// Category is the `type` form field of an upload.
type Category string

const (
	CategoryImage Category = "image"
	CategoryFile  Category = "file"
)

const (
	MaxImageSize int64 = 5 << 20
	MaxFileSize  int64 = 10 << 20
)

var (
	ErrUnknownCategory = errors.New("type must be image or file")
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrTooLarge        = errors.New("file too large")
	ErrEmpty           = errors.New("file is empty")
)

// imageTypes maps allowed image MIME types to their canonical extension.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var documentTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.ms-excel": ".xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"text/plain": ".txt",
	"text/csv":   ".csv",
}

// ParseCategory validates the `type` discriminator.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryImage:
		return CategoryImage, nil
	case CategoryFile:
		return CategoryFile, nil
	default:
		return "", ErrUnknownCategory
	}
}

// MaxSize is the ceiling for a category.
func (c Category) MaxSize() int64 {
	if c == CategoryImage {
		return MaxImageSize
	}
	return MaxFileSize
}

// NormalizeType strips parameters such as charset from a Content-Type header.
func NormalizeType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// Allowed reports whether contentType may be uploaded as category.
// Image uploads accept images only; file uploads accept documents and images.
func Allowed(category Category, contentType string) bool {
	mediaType := NormalizeType(contentType)
	if _, ok := imageTypes[mediaType]; ok {
		return true
	}
	if category == CategoryFile {
		_, ok := documentTypes[mediaType]
		return ok
	}
	return false
}

// Validate checks the declared type and size. The returned error message is
// safe to show to admins.
func Validate(category Category, contentType string, size int64) error {
	if !Allowed(category, contentType) {
		if category == CategoryImage {
			return fmt.Errorf("%w: images must be JPEG, PNG, GIF or WebP", ErrUnsupportedType)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, NormalizeType(contentType))
	}
	if size <= 0 {
		return ErrEmpty
	}
	if limit := category.MaxSize(); size > limit {
		return fmt.Errorf("%w: maximum size is %dMB", ErrTooLarge, limit>>20)
	}
	return nil
}

// GenerateName returns <unix-millis>-<random><ext>. The extension comes from
// the original file name, falling back to one derived from the MIME type.
func GenerateName(now time.Time, original, contentType string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" || len(ext) > 8 {
		ext = extensionFor(contentType)
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), suffix, ext)
}

func extensionFor(contentType string) string {
	mediaType := NormalizeType(contentType)
	if ext, ok := imageTypes[mediaType]; ok {
		return ext
	}
	if ext, ok := documentTypes[mediaType]; ok {
		return ext
	}
	return ""
}

// ImageSize reads only the image header. ok is false when it cannot be decoded.
func ImageSize(r io.Reader) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
