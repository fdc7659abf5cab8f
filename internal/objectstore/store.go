// Package objectstore persists uploaded bytes and returns their public URL.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store is where uploads end up.
type Store interface {
	Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error)
}

// Local writes files under a directory that the router serves statically.
type Local struct {
	dir     string
	urlPath string
}

// NewLocal 创建本地文件存储，urlPath 为对外访问前缀（例如 /static/uploads）。
func NewLocal(dir, urlPath string) *Local {
	return &Local{
		dir:     dir,
		urlPath: "/" + strings.Trim(urlPath, "/"),
	}
}

// Dir returns the directory files are written to.
func (l *Local) Dir() string {
	return l.dir
}

// Put writes body to dir/name.
func (l *Local) Put(_ context.Context, name, _ string, body io.Reader, _ int64) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("objectstore: invalid name %q", name)
	}
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("objectstore: create upload dir: %w", err)
	}

	target := filepath.Join(l.dir, name)
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("objectstore: create %s: %w", name, err)
	}

	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		os.Remove(target)
		return "", fmt.Errorf("objectstore: write %s: %w", name, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("objectstore: close %s: %w", name, err)
	}

	return path.Join(l.urlPath, name), nil
}
