package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch runs the batch once and then again every time the source image is
// written or replaced, until ctx is cancelled. Runs never overlap.
func (g *Generator) Watch(ctx context.Context) error {
	source, err := filepath.Abs(g.conf.sourcePath)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsWatcher.Close()

	// Editors commonly save by rename, so watch the directory rather than the file
	dir := filepath.Dir(source)
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.WithFields(log.Fields{
		"src.path":   source,
		"watch.path": dir,
	}).Info("watching source image for changes")

	if err := g.report(g.Run()); err != nil {
		return err
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopped watching source image")
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(event, source) {
				continue
			}
			log.WithFields(log.Fields{
				"event.op": event.Op.String(),
				"src.path": event.Name,
			}).Debug("source image changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(g.conf.debounce)
			fire = timer.C

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.WithFields(log.Fields{
				"error": err,
			}).Warn("file watcher error")

		case <-fire:
			fire = nil
			if err := g.report(g.Run()); err != nil {
				return err
			}
		}
	}
}

func isSourceEvent(event fsnotify.Event, source string) bool {
	if filepath.Clean(event.Name) != source {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
