package main

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/tklehn/gomces/internal/obs"
)

// watchAndRerun re-invokes run every time a file is created in dir, until
// the watcher errors out or the process is killed (spec §10.2's watch-mode
// extension to the file-boundary contract §6 already assumes: one job per
// molecule file dropped into a directory).
func watchAndRerun(dir string, logger *zap.Logger, run func(triggerPath string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	logger.Info("watching for new molecule files", zap.String("dir", dir))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			runID := obs.RunID()
			logger.Info("watch event triggered run", zap.String("run_id", runID), zap.String("path", event.Name))
			if err := run(event.Name); err != nil {
				logger.Error("watch-triggered run failed", zap.String("run_id", runID), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		}
	}
}
