package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
)

// ErrInvalidMediaPath reports a media-relative path that escapes the media
// root or is otherwise malformed.
var ErrInvalidMediaPath = fmt.Errorf("invalid media path")

// fileMediaStore is the filesystem implementation of [MediaStore]. Files are
// written under a single media root directory, named by a fresh UUID plus the
// original file's extension, and addressed by slash-separated paths relative
// to that root.
type fileMediaStore struct {
	logger *logger.Logger
	root   string
}

// NewFileMediaStore constructs a [MediaStore] rooted at cfg.MediaDir,
// creating the directory when missing.
func NewFileMediaStore(cfg config.Files, logger *logger.Logger) (MediaStore, error) {
	logger.Debug().Str("media_dir", cfg.MediaDir).Msg("creating file media store")

	if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media directory: %w", err)
	}

	return &fileMediaStore{
		logger: logger,
		root:   cfg.MediaDir,
	}, nil
}

// Save streams r into a freshly named file under subdir and returns the
// media-relative path of the stored file. A partially written file is removed
// on copy failure.
func (s *fileMediaStore) Save(ctx context.Context, subdir, originalName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	relPath := path.Join(subdir, uuid.NewString()+strings.ToLower(path.Ext(originalName)))
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("error creating media subdirectory: %w", err)
	}

	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("error creating media file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(fullPath)

		log.Err(err).Str("func", "*fileMediaStore.Save").Str("path", relPath).Msg("error writing media file")
		return "", fmt.Errorf("error writing media file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("error closing media file: %w", err)
	}

	return relPath, nil
}

// Open returns a reader over a previously stored file. Returns
// [os.ErrNotExist]-wrapping errors for missing files, which callers map to
// their own not-found sentinels.
func (s *fileMediaStore) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileMediaStore.Open").Str("path", relPath).Msg("error opening media file")
		return nil, fmt.Errorf("error opening media file: %w", err)
	}

	return file, nil
}

// Remove deletes a previously stored file. Removing a missing file is not an
// error: deletion flows stay idempotent.
func (s *fileMediaStore) Remove(ctx context.Context, relPath string) error {
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logger.FromContext(ctx).Err(err).Str("func", "*fileMediaStore.Remove").Str("path", relPath).Msg("error removing media file")
		return fmt.Errorf("error removing media file: %w", err)
	}

	return nil
}

// resolve maps a media-relative path onto the media root, rejecting anything
// that would escape it.
func (s *fileMediaStore) resolve(relPath string) (string, error) {
	if relPath == "" || path.IsAbs(relPath) {
		return "", ErrInvalidMediaPath
	}

	cleaned := path.Clean(relPath)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidMediaPath
	}

	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}
