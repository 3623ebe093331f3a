package dcmread

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentlyWalkDir(t *testing.T) {
	// ensures that every file below the directory is visited
	// exactly once before returning.
	t.Parallel()
	dir := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.dcm", "b.dcm", filepath.Join("nested", "c.dcm")} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	var visited atomic.Int64
	assert.NoError(t, ConcurrentlyWalkDir(dir, func(file string) {
		visited.Add(1)
	}))
	assert.Equal(t, int64(3), visited.Load())
}

func TestConcurrentlyWalkDirError(t *testing.T) {
	t.Parallel()
	err := ConcurrentlyWalkDir(filepath.Join(t.TempDir(), "nonexistent"), func(file string) {})
	assert.Error(t, err)
}
