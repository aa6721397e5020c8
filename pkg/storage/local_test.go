package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoragePutAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	payload := "fake image bytes"
	require.NoError(t, store.Put("obj.png", strings.NewReader(payload)))

	file, err := store.Open("obj.png")
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestLocalStorageNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	require.NoError(t, store.Put("obj.png", strings.NewReader("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "obj.png", entries[0].Name())
}

func TestLocalStorageURLJoinsCleanly(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/obj.png", store.URL("obj.png"))
}

func TestLocalStoragePutStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	require.NoError(t, store.Put("../escape.png", strings.NewReader("data")))
	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteIsIdempotent(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	require.NoError(t, store.Put("obj.png", strings.NewReader("data")))
	require.NoError(t, store.Delete("obj.png"))
	require.NoError(t, store.Delete("obj.png"))
}

func TestLocalStorageCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
