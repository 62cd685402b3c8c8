package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_DebouncedWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))

	events, stop, err := Watch(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer stop()

	for i := range 3 {
		require.NoError(t, os.WriteFile(path, []byte("items: []\n# "+string(rune('a'+i))+"\n"), 0o644))
	}

	select {
	case ev := <-events:
		assert.Equal(t, path, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after writing the watched file")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))

	events, stop, err := Watch(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for %s", ev.Path)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_StopClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	events, stop, err := Watch(path, 0)
	require.NoError(t, err)
	stop()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after stop")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, _, err := Watch(filepath.Join(t.TempDir(), "gone", "items.yaml"), 0)
	assert.Error(t, err)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"write", fsnotify.Event{Name: "/d/items.yaml", Op: fsnotify.Write}, true},
		{"rename into place", fsnotify.Event{Name: "/d/items.yaml", Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: "/d/items.yaml", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/d/notes.yaml", Op: fsnotify.Write}, false},
		{"save temp", fsnotify.Event{Name: "/d/.items.yaml.123.tmp", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevant(tt.ev, "items.yaml"))
		})
	}
}
