package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounce collapses the burst of events editors emit on save.
const debounce = 100 * time.Millisecond

// watch runs fn once, then again after every change of the file at path,
// until ctx is done. Failures of fn are logged and do not stop watching.
func watch(ctx context.Context, path string, fn func() error, logger zerolog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	// Editors replace files on save, so the directory is watched.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fn(); err != nil {
		logger.Error().Err(err).Msg("generation failed")
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(path) || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			logger.Info().Str("config", path).Msg("configuration changed, regenerating")
			if err := fn(); err != nil {
				logger.Error().Err(err).Msg("generation failed")
			}
		}
	}
}
