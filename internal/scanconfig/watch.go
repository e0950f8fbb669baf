// SPDX-License-Identifier: MIT

package scanconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/soulseed/consolectl/internal/log"
)

const debounceWindow = 200 * time.Millisecond

// Watch re-loads, re-validates and re-renders the scan configuration
// whenever the declarative file changes, until ctx is cancelled. Events are
// debounced; editors that write via rename are handled by watching the
// parent directory.
func Watch(ctx context.Context, path, outPath string) error {
	logger := log.WithComponent("scanconfig")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	// Render once up front so the artifact matches the file at start.
	if err := reload(abs, outPath); err != nil {
		return err
	}

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			if err := reload(abs, outPath); err != nil {
				// Keep watching; a half-written file will fire again.
				logger.Warn().
					Err(err).
					Str(log.FieldPath, abs).
					Msg("scan config reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

func reload(path, outPath string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}
	if err := WriteFile(outPath, cfg); err != nil {
		return err
	}
	logger := log.WithComponent("scanconfig")
	logger.Info().
		Str(log.FieldEvent, "scanconfig.rendered").
		Str(log.FieldPath, outPath).
		Int("patterns", len(cfg.Content)).
		Msg("rendered scan config artifact")
	return nil
}
