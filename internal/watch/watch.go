package watch

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"logview/internal/config"
)

// settleDelay is how long a matching file must stay quiet before it is
// rendered. CI artifact downloads arrive as a burst of write events.
const settleDelay = 500 * time.Millisecond

// Run watches the configured log file directory and calls render for each
// archive that appears or changes, once its writes settle. It blocks until
// the context is cancelled.
func Run(ctx context.Context, cfg *config.Config, render func(path string) error) error {
	dir := cfg.LogFileDirectory
	if dir == "" {
		dir = "."
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("init watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Info().Str("dir", dir).Str("glob", cfg.Archives).Msg("watching for archives")

	settled := make(chan string)
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			matched, err := path.Match(cfg.Archives, filepath.Base(event.Name))
			if err != nil || !matched {
				continue
			}
			// Restart the settle timer on every event for the file.
			name := event.Name
			if timer, live := timers[name]; live {
				timer.Reset(settleDelay)
				continue
			}
			timers[name] = time.AfterFunc(settleDelay, func() {
				select {
				case settled <- name:
				case <-ctx.Done():
				}
			})

		case name := <-settled:
			delete(timers, name)
			log.Info().Str("archive", name).Msg("new archive settled")
			if err := render(name); err != nil {
				log.Warn().Str("archive", name).Err(err).Msg("render failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}
