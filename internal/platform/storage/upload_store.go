// Package storage persists uploaded files on local disk. Filenames are
// server-generated; nothing from the client-supplied name except the
// extension ever reaches the filesystem, and the extension must be on the
// image allow-list.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFileType is returned when an upload's extension is not on
// the allow-list.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// allowedExtensions lists the image extensions accepted for pet uploads.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// UploadStore writes uploads into a single directory and returns the
// web-facing path they are served from.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the upload directory if needed and returns a store
// rooted there.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save writes the uploaded file under a generated UUID filename and returns
// the path it will be served from ("uploads/<name>").
func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "uploads/" + name, nil
}
