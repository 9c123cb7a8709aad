package shaders

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fosdem/glsample/lib/log"
	"github.com/jhenstridge/go-inotify"
)

// settleTime gives editors a moment to finish writing before the file is
// read back.
const settleTime = 100 * time.Millisecond

// Watch calls onChange whenever one of the given shader files is rewritten,
// until ctx is cancelled. Directories are watched rather than the files
// themselves so that editors which save by renaming are noticed too.
func Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	logger := log.Module("shaders")

	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}

	wanted := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return fmt.Errorf("somehow, %s is malformed: %w", p, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if _, err := watcher.Watch(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("could not watch %s: %w", dir, err)
		}
	}

	go func() {
		<-ctx.Done()
		if err := watcher.Close(); err != nil {
			logger.Warn("could not close inotify watcher", "err", err)
		}
	}()

	go func() {
		for ev := range watcher.Event {
			if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 {
				continue
			}
			name := eventPath(&ev)
			if !wanted[name] {
				continue
			}
			logger.Debug("shader changed on disk", "path", name)
			time.Sleep(settleTime)
			if ctx.Err() != nil {
				return
			}
			onChange(name)
		}
	}()

	return nil
}

// eventPath turns an event for a file inside a watched directory into the
// file's full path. The event only carries the name relative to the watch.
func eventPath(ev *inotify.Event) string {
	if ev.Watch == nil || filepath.IsAbs(ev.Name) {
		return filepath.Clean(ev.Name)
	}
	return filepath.Join(ev.Watch.Path, ev.Name)
}
