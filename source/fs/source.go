// Package fs provides a file backed snapshot payload source, typically a
// local export of the remote store's contents.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/yacchi/anaume/source"
	"github.com/yacchi/anaume/watcher"
)

// Source loads a raw snapshot payload from a file.
type Source struct {
	path string
}

// Ensure Source implements the source interfaces.
var (
	_ source.Source    = (*Source)(nil)
	_ source.Watchable = (*Source)(nil)
)

// New creates a source that reads from a file. The path can be absolute or
// relative; tilde (~) expansion is supported.
//
// Example:
//
//	src := fs.New("~/exports/rooms.json")
func New(path string) *Source {
	return &Source{path: path}
}

// Load implements the source.Source interface.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolvePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", s.path, err)
	}
	return data, nil
}

// Path returns the resolved file path.
func (s *Source) Path() string {
	path, err := s.resolvePath()
	if err != nil {
		return s.path
	}
	return path
}

// resolvePath expands a leading tilde against the user's home directory.
func (s *Source) resolvePath() (string, error) {
	path := s.path
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Subscribe implements the watcher.SubscriptionHandler interface using
// fsnotify. Notifications are event-only (notify(nil, nil)); the watcher
// fetches the payload separately.
func (s *Source) Subscribe(ctx context.Context, notify watcher.NotifyFunc) (watcher.StopFunc, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	path, err := s.resolvePath()
	if err != nil {
		w.Close()
		return nil, err
	}

	// Watch the directory containing the file rather than the file itself.
	// This handles atomic writes (temp file + rename) and file recreation.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch directory %q: %w", dir, err)
	}

	filename := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					notify(nil, nil)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				notify(nil, err)
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func(ctx context.Context) error {
		return w.Close()
	}

	return stop, nil
}

// Watch implements the source.Watchable interface with an fsnotify-backed
// subscription watcher.
func (s *Source) Watch() (watcher.Watcher, error) {
	return watcher.NewSubscription(s, s.Load), nil
}
