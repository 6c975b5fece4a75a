package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveWritesFileUnderMountPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDisk(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "villa.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, MountPath+"/"))
	require.True(t, strings.HasSuffix(path, "_villa.jpg"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, MountPath+"/")))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))
}

func TestSaveSanitizesFilename(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "../..//etc/pass wd?.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	require.NotContains(t, path, "..")
	require.NotContains(t, strings.TrimPrefix(path, MountPath+"/"), "/")
}

func TestSaveUniqueNamesForSameFilename(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(context.Background(), "a.jpg", strings.NewReader("1"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "a.jpg", strings.NewReader("2"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	store, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "a.jpg", strings.NewReader("1"))
	require.Error(t, err)
}
