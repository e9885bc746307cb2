package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watchSet tracks the files that trigger regeneration. Their parent
// directories are watched so that rename-on-save editors are still seen.
type watchSet struct {
	fsw   *fsnotify.Watcher
	dirs  map[string]struct{}
	files map[string]struct{}
}

func (w *watchSet) update(paths []string) error {
	files := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.files = files
	return nil
}

func (w *watchSet) matches(evt fsnotify.Event) bool {
	if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) && !evt.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(evt.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// watch calls regenerate once, then again after every debounced change to
// the files it reports, until ctx is done.
func (app *cliApp) watch(ctx context.Context, root string, regenerate func() []string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	set := &watchSet{fsw: fsw, dirs: make(map[string]struct{})}
	if err := set.update(regenerate()); err != nil {
		return err
	}
	app.logger.Info("watching for changes", "root", root)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !set.matches(evt) {
				continue
			}
			app.logger.Debug("change detected", "file", evt.Name, "op", evt.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			app.logger.Warn("watcher error", "err", err)
		case <-timer.C:
			if err := set.update(regenerate()); err != nil {
				app.logger.Warn("update watched files", "err", err)
			}
		}
	}
}
