package util

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("a;b;c\n"), 0o644))

	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "nope.csv")))
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(path))
	assert.Equal(t, uint64(6), FileSize(path))
	assert.Equal(t, uint64(0), FileSize(filepath.Join(dir, "nope.csv")))
}

func TestQuickSHA1Stable(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small")
	require.NoError(t, os.WriteFile(small, []byte("content"), 0o644))
	big := filepath.Join(dir, "big")
	require.NoError(t, os.WriteFile(big, bytes.Repeat([]byte("x"), 4096), 0o644))

	for _, path := range []string{small, big} {
		first, err := QuickSHA1(path)
		require.NoError(t, err)
		second, err := QuickSHA1(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 40)
	}

	a, _ := QuickSHA1(small)
	b, _ := QuickSHA1(big)
	assert.NotEqual(t, a, b)
}

func TestQuickSHA1Missing(t *testing.T) {
	_, err := QuickSHA1(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
