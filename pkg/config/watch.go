package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/confkit/confkit/pkg/tree"
)

// ReloadFunc is invoked with the freshly parsed tree after a watched
// file changes. Returning an error only logs it; watching continues.
type ReloadFunc func(path string, root *tree.Node) error

// Loader loads configuration files, caches the parsed trees per path,
// and optionally re-parses on filesystem change events.
type Loader struct {
	cfg    *Config
	logger zerolog.Logger

	mu      sync.RWMutex
	cache   map[string]*tree.Node
	watcher *fsnotify.Watcher
}

// NewLoader creates a loader parsing through cfg (nil means default
// options).
func NewLoader(cfg *Config, logger zerolog.Logger) *Loader {
	if cfg == nil {
		cfg = defaultConfig
	}
	return &Loader{
		cfg:    cfg,
		logger: logger.With().Str("component", "config-loader").Logger(),
		cache:  make(map[string]*tree.Node),
	}
}

// Load parses the file at path and caches the result.
func (l *Loader) Load(path string) (*tree.Node, error) {
	root, err := l.cfg.ParseFile(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = root
	l.mu.Unlock()

	l.logger.Debug().Str("path", path).Msg("Configuration loaded")
	return root, nil
}

// Cached returns the most recently parsed tree for path, if any.
func (l *Loader) Cached(path string) (*tree.Node, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	root, ok := l.cache[path]
	return root, ok
}

// Watch starts watching path and re-parses it on every write or create
// event, invoking reload with the new tree. The containing directory is
// watched rather than the file itself so editors that replace the file
// keep triggering events. Watching stops when ctx is canceled or Close
// is called.
func (l *Loader) Watch(ctx context.Context, path string, reload ReloadFunc) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	l.mu.Lock()
	l.watcher = watcher
	l.mu.Unlock()

	go l.processEvents(ctx, watcher, path, reload)

	l.logger.Info().Str("path", path).Msg("Started watching configuration")
	return nil
}

func (l *Loader) processEvents(ctx context.Context, watcher *fsnotify.Watcher, path string, reload ReloadFunc) {
	for {
		select {
		case <-ctx.Done():
			watcher.Close()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != path || !event.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			root, err := l.Load(path)
			if err != nil {
				l.logger.Warn().Err(err).Str("path", path).Msg("Failed to reload configuration")
				continue
			}
			if reload != nil {
				if err := reload(path, root); err != nil {
					l.logger.Warn().Err(err).Str("path", path).Msg("Reload callback failed")
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// Close stops watching. Safe to call when Watch was never started.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.watcher == nil {
		return nil
	}
	err := l.watcher.Close()
	l.watcher = nil
	return err
}
