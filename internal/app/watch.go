package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"lf-go/internal/localfile"
)

// WatchFunc receives each listing produced by Watch. Returning an error
// stops the watch with that error.
type WatchFunc func(files []*localfile.Path, err error) error

// Watch calls fn with the current listing of the named location and again
// after every change to it, until ctx is done. Directory locations watch the
// directory itself; file locations watch their parent and only react to
// events on the file.
func (a *LFApp) Watch(ctx context.Context, name string, fn WatchFunc) error {
	loc, ok := a.catalog.Get(name)
	if !ok {
		return fmt.Errorf("watching %s: %w", name, localfile.ErrInvalidArgument)
	}

	dir := loc.Location()
	target := ""
	if !loc.Pattern().IsPresent() {
		dir = filepath.Dir(loc.Location())
		target = filepath.Clean(loc.Location())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}
	a.logger.Debug("watching location", "name", name, "dir", dir)

	if err := fn(a.catalog.Files(name)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher channel closed")
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			if target != "" && filepath.Clean(event.Name) != target {
				continue
			}
			a.logger.Debug("location changed", "name", name, "event", event.String())
			if err := fn(a.catalog.Files(name)); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}
			a.logger.Warn("fsnotify watcher error", "name", name, "error", err)
		}
	}
}
