package upload

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory(" Image ")
	require.NoError(t, err)
	require.Equal(t, CategoryImage, cat)

	_, err = ParseCategory("video")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		contentType string
		size        int64
		wantErr     error
	}{
		{"jpeg image", CategoryImage, "image/jpeg", 1024, nil},
		{"webp image", CategoryImage, "image/webp", MaxImageSize, nil},
		{"image too large", CategoryImage, "image/png", MaxImageSize + 1, ErrTooLarge},
		{"pdf as image", CategoryImage, "application/pdf", 10, ErrUnsupportedType},
		{"svg rejected", CategoryImage, "image/svg+xml", 10, ErrUnsupportedType},
		{"pdf file", CategoryFile, "application/pdf", 2 << 20, nil},
		{"csv with charset", CategoryFile, "text/csv; charset=utf-8", 100, nil},
		{"image as file", CategoryFile, "image/gif", 100, nil},
		{"file too large", CategoryFile, "application/pdf", MaxFileSize + 1, ErrTooLarge},
		{"image within file ceiling", CategoryFile, "image/png", MaxImageSize + 1, nil},
		{"executable", CategoryFile, "application/x-msdownload", 100, ErrUnsupportedType},
		{"empty", CategoryFile, "text/plain", 0, ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.category, tt.contentType, tt.size)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestGenerateName(t *testing.T) {
	now := time.UnixMilli(1718000000123)
	pattern := regexp.MustCompile(`^1718000000123-[0-9a-f]{12}\.jpg$`)

	first := GenerateName(now, "Sunset.JPG", "image/jpeg")
	second := GenerateName(now, "Sunset.JPG", "image/jpeg")
	require.Regexp(t, pattern, first)
	require.NotEqual(t, first, second)

	require.Regexp(t, `\.pdf$`, GenerateName(now, "minutes", "application/pdf"))
}

func TestImageSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 18))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	w, h, ok := ImageSize(&buf)
	require.True(t, ok)
	require.Equal(t, 32, w)
	require.Equal(t, 18, h)

	_, _, ok = ImageSize(bytes.NewReader([]byte("not an image")))
	require.False(t, ok)
}
