package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/material/pkg/errors"
)

// Watch reloads the theme file at path whenever it is written or recreated
// and calls onChange with a freshly configured env. The directory is watched
// rather than the file so editors that replace the file on save keep
// working. Reload failures are reported through errors.Report and the
// previous env stays in effect.
//
// onChange runs on the watcher goroutine; hosts must hand the env over to
// their event loop. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Env)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New("theme.Watch", errors.KindWatch, path, err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.New("theme.Watch", errors.KindWatch, path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			env, err := LoadEnv(path)
			if err != nil {
				report(err, path)
				continue
			}
			slog.Debug("theme reloaded", "path", path)
			onChange(env)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			report(errors.New("theme.Watch", errors.KindWatch, path, err), path)
		}
	}
}

func report(err error, path string) {
	var me *errors.MaterialError
	if !errors.As(err, &me) {
		me = errors.New("theme.Watch", errors.KindUnknown, path, err)
	}
	errors.Report(me)
}
