// Package storage keeps ticket attachments on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/synerjet/bendesk/internal/shared/logger"
)

// fallbackFilename is used when sanitizing leaves nothing.
const fallbackFilename = "anexo"

var (
	ErrInvalidFilename = errors.New("invalid filename")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileTooLarge    = errors.New("file exceeds the upload limit")
)

// StoredFile describes a saved upload.
type StoredFile struct {
	Filename string
	Path     string
	Size     int64
}

// FileStore writes uploads into a single flat directory.
type FileStore struct {
	dir     string
	maxSize int64
	logger  logger.Interface
}

// NewFileStore creates dir when missing. maxSize <= 0 disables the limit.
func NewFileStore(dir string, maxSize int64, log logger.Interface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &FileStore{dir: dir, maxSize: maxSize, logger: log.With("component", "storage")}, nil
}

// Save stores r under the sanitized form of name. An existing file is
// never overwritten: a short random suffix is added instead.
func (s *FileStore) Save(_ context.Context, name string, r io.Reader) (*StoredFile, error) {
	filename := SecureFilename(name)
	if filename == "" {
		filename = fallbackFilename
	}

	f, filename, err := s.create(filename)
	if err != nil {
		return nil, err
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()
	path := filepath.Join(s.dir, filename)

	switch {
	case copyErr != nil:
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", copyErr)
	case closeErr != nil:
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", closeErr)
	case s.maxSize > 0 && n > s.maxSize:
		_ = os.Remove(path)
		return nil, ErrFileTooLarge
	}

	s.logger.Infow("attachment stored", "filename", filename, "size", n)
	return &StoredFile{Filename: filename, Path: path, Size: n}, nil
}

func (s *FileStore) create(filename string) (*os.File, string, error) {
	candidate := filename
	for attempt := 0; attempt < 5; attempt++ {
		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("failed to create upload: %w", err)
		}
		ext := filepath.Ext(filename)
		candidate = fmt.Sprintf("%s_%s%s", strings.TrimSuffix(filename, ext), uuid.NewString()[:8], ext)
	}
	return nil, "", fmt.Errorf("failed to allocate a unique name for %s", filename)
}

// Open returns a stored file for download. Names that do not survive
// sanitization unchanged are rejected.
func (s *FileStore) Open(filename string) (*os.File, error) {
	if filename == "" || SecureFilename(filename) != filename {
		return nil, ErrInvalidFilename
	}
	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return f, nil
}

// Path returns the on-disk path of a stored filename.
func (s *FileStore) Path(filename string) string {
	return filepath.Join(s.dir, filename)
}
