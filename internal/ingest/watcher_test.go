package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	t.Parallel()

	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}

func TestWatcherInitialScan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "rx_123_1700000000.jpg")
	require.NoError(t, os.WriteFile(existing, []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	got := collect(t, events, 1, 3*time.Second)
	assert.Equal(t, []string{existing}, got)
}

func TestWatcherDebounceCoalescesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	// A burst of writes to the same two files plus one ignored extension.
	a := filepath.Join(dir, "label.jpg")
	b := filepath.Join(dir, "coa.png")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(a, []byte{byte(i)}, 0o644))
		require.NoError(t, os.WriteFile(b, []byte{byte(i)}, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644))

	got := collect(t, events, 2, 3*time.Second)
	assert.ElementsMatch(t, []string{a, b}, got)
}

func TestWatcherWithoutDebounceEmitsImmediately(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	path := filepath.Join(dir, "vial.jpeg")
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	got := collect(t, events, 1, 3*time.Second)
	assert.Contains(t, got, path)
}

// collect drains events until n distinct paths arrive or the deadline passes.
func collect(t *testing.T, events <-chan string, n int, timeout time.Duration) []string {
	t.Helper()

	seen := map[string]struct{}{}
	deadline := time.After(timeout)
	for len(seen) < n {
		select {
		case p, ok := <-events:
			if !ok {
				t.Fatalf("event channel closed with %d of %d paths", len(seen), n)
			}
			seen[p] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out with %d of %d paths", len(seen), n)
		}
	}
	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	return paths
}
