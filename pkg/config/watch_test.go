package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/confkit/confkit/pkg/tree"
)

func TestLoaderLoadAndCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.cfg")
	require.NoError(t, os.WriteFile(path, []byte("k = v"), 0o644))

	l := NewLoader(nil, zerolog.Nop())
	defer l.Close()

	_, ok := l.Cached(path)
	require.False(t, ok)

	root, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, "v", root.Resolve("k", ""))

	cached, ok := l.Cached(path)
	require.True(t, ok)
	require.Same(t, root, cached)
}

func TestLoaderLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cfg")
	require.NoError(t, os.WriteFile(path, []byte("bad key = 1"), 0o644))

	l := NewLoader(nil, zerolog.Nop())
	defer l.Close()

	_, err := l.Load(path)
	require.ErrorIs(t, err, ErrInvalidName)

	_, ok := l.Cached(path)
	require.False(t, ok, "failed loads must not populate the cache")
}

func TestLoaderWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.cfg")
	require.NoError(t, os.WriteFile(path, []byte("k = v1"), 0o644))

	l := NewLoader(nil, zerolog.Nop())
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *tree.Node, 4)
	require.NoError(t, l.Watch(ctx, path, func(p string, root *tree.Node) error {
		reloaded <- root
		return nil
	}))

	require.NoError(t, os.WriteFile(path, []byte("k = v2"), 0o644))

	select {
	case root := <-reloaded:
		require.Equal(t, "v2", root.Resolve("k", ""))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cached, ok := l.Cached(path)
	require.True(t, ok)
	require.Equal(t, "v2", cached.Resolve("k", ""))
}
