package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/internal/shared/constants"
	"careline/internal/shared/logger"
)

func newTestStore(t *testing.T) (*LocalFileStore, string) {
	t.Helper()
	root := t.TempDir()
	store, err := NewLocalFileStore(root, 0, logger.NewLogger())
	require.NoError(t, err)
	return store, root
}

func TestLocalFileStore_MaxUploadBytes(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir(), 1024, logger.NewLogger())
	require.NoError(t, err)
	assert.Equal(t, int64(1024), store.MaxUploadBytes())

	// zero falls back to the default cap
	store, err = NewLocalFileStore(t.TempDir(), 0, logger.NewLogger())
	require.NoError(t, err)
	assert.Equal(t, int64(constants.MaxAttachmentBytes), store.MaxUploadBytes())
}

func TestLocalFileStore_PutAndDelete(t *testing.T) {
	store, root := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Put(ctx, "scan.png", strings.NewReader("pngbytes"), 8)
	require.NoError(t, err)
	assert.Equal(t, "ticket_files/scan.png", ref)

	data, err := os.ReadFile(filepath.Join(root, "ticket_files", "scan.png"))
	require.NoError(t, err)
	assert.Equal(t, "pngbytes", string(data))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(root, "ticket_files", "scan.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStore_DeleteMissingIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), "ticket_files/never-existed.png")
	assert.NoError(t, err)
}

func TestLocalFileStore_DeleteRejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), "../outside.txt")
	assert.Error(t, err)

	err = store.Delete(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}

func TestLocalFileStore_PutStripsDirectoryFromFilename(t *testing.T) {
	store, root := newTestStore(t)

	ref, err := store.Put(context.Background(), "../../evil.sh", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, "ticket_files/evil.sh", ref)

	_, err = os.Stat(filepath.Join(root, "ticket_files", "evil.sh"))
	assert.NoError(t, err)
}
