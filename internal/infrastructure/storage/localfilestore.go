// Package storage persists attachment bytes on the local filesystem under a
// configured media root.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"careline/internal/shared/constants"
	"careline/internal/shared/logger"
)

type LocalFileStore struct {
	mediaRoot      string
	maxUploadBytes int64
	logger         logger.Interface
}

func NewLocalFileStore(mediaRoot string, maxUploadBytes int64, log logger.Interface) (*LocalFileStore, error) {
	dir := filepath.Join(mediaRoot, constants.AttachmentDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	if maxUploadBytes <= 0 {
		maxUploadBytes = constants.MaxAttachmentBytes
	}

	return &LocalFileStore{
		mediaRoot:      mediaRoot,
		maxUploadBytes: maxUploadBytes,
		logger:         log.With("component", "filestore"),
	}, nil
}

// MaxUploadBytes is the configured per-file size cap.
func (s *LocalFileStore) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Put writes the content to disk and returns the reference stored on the
// record, a path relative to the media root.
func (s *LocalFileStore) Put(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
	ref := filepath.ToSlash(filepath.Join(constants.AttachmentDir, filepath.Base(filename)))
	fullPath := filepath.Join(s.mediaRoot, ref)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	if size > 0 && written != size {
		s.logger.Warnw("attachment size mismatch", "ref", ref, "declared", size, "written", written)
	}

	return ref, nil
}

// Delete removes the referenced file. A missing file is not an error; the
// record is the source of truth and the bytes may already be gone.
func (s *LocalFileStore) Delete(ctx context.Context, ref string) error {
	cleaned := filepath.Clean(ref)
	if strings.Contains(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid attachment reference: %s", ref)
	}

	fullPath := filepath.Join(s.mediaRoot, cleaned)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warnw("attachment already gone", "ref", ref)
			return nil
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return nil
}
