package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rockgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rock:\n  planes: 3\n"), 0644))

	w, err := Watch(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("rock:\n  planes: 7\n"), 0644))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, 7, cfg.Rock.Planes)
		assert.Equal(t, 1280, cfg.Graphics.Width, "defaults fill the rest")
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
}

func TestWatcherSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rockgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rock:\n  planes: 3\n"), 0644))

	w, err := Watch(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("rock:\n  width: -2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected reload: %+v", cfg.Rock)
	case <-time.After(3 * reloadDelay):
	}
}
