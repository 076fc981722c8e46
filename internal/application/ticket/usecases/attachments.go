package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"careline/internal/shared/constants"
	"careline/internal/shared/errors"
	"careline/internal/shared/id"
	"careline/internal/shared/logger"
)

// storeAttachment validates the upload size and writes the bytes to the file
// store. The size gate runs before any write so an oversized file never
// touches disk.
func storeAttachment(ctx context.Context, fs FileStore, upload *AttachmentUpload) (*string, error) {
	if upload == nil {
		return nil, nil
	}

	limit := fs.MaxUploadBytes()
	if limit <= 0 {
		limit = constants.MaxAttachmentBytes
	}
	if upload.Size > limit {
		limitMB := limit / (1 << 20)
		return nil, errors.NewValidationError(fmt.Sprintf("File size exceeds the maximum limit of %dMB.", limitMB)).
			WithFields(map[string]string{"file": fmt.Sprintf("file size exceeds the maximum limit of %dMB", limitMB)})
	}

	name := fmt.Sprintf("%s_%s_%s",
		id.PrefixAttachment,
		id.MustGenerate(id.DefaultLength),
		sanitizeBase(upload.Filename),
	)

	ref, err := fs.Put(ctx, name, upload.Content, upload.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	return &ref, nil
}

// sanitizeBase strips any path components from a client-supplied filename.
func sanitizeBase(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	return base
}

// detachQuietly removes stored bytes best-effort. Failures are logged and
// never propagated: attachment cleanup must not abort the record operation
// that triggered it.
func detachQuietly(ctx context.Context, fs FileStore, ref *string, log logger.Interface) {
	if ref == nil || *ref == "" {
		return
	}
	if err := fs.Delete(ctx, *ref); err != nil {
		log.Warnw("failed to delete stored attachment", "ref", *ref, "error", err)
	}
}
