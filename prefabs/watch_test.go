package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "sandbox.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: x\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for sandbox.yaml")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestFileKinds(t *testing.T) {
	tests := []struct {
		path   string
		spec   bool
		script bool
	}{
		{"sandbox.yaml", true, false},
		{"a/b/level.YML", true, false},
		{"preset.toml", true, false},
		{"scripts/walk.tengo", false, true},
		{"readme.md", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.spec, IsSpecFile(tc.path))
			assert.Equal(t, tc.script, IsScriptFile(tc.path))
		})
	}
}
