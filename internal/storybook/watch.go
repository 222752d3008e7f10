package storybook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
)

// DefaultDebounce is used when Watch is given a non-positive debounce.
const DefaultDebounce = 200 * time.Millisecond

// RebuildFunc is invoked after a burst of file changes settles.
type RebuildFunc func(ctx context.Context) error

// Watch calls rebuild whenever the paths change, coalescing events that
// arrive within debounce of each other. A directory path matches any file
// inside it. A file path is watched through its parent directory, so saves
// that replace the file by rename keep being seen. Rebuild errors are
// logged and do not stop the watch. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, paths []string, debounce time.Duration, rebuild RebuildFunc, log *logger.Logger) error {
	if len(paths) == 0 {
		return fmt.Errorf("no paths to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	set, err := newWatchSet(paths)
	if err != nil {
		return err
	}
	for _, dir := range set.dirs() {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.With("path", dir).Debug("watching")
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevant == 0 || !set.matches(ev.Name) {
				continue
			}
			log.With("file", ev.Name).Debug("change detected")
			timer.Reset(debounce)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(werr, "watcher error")

		case <-timer.C:
			if err := rebuild(ctx); err != nil {
				log.Error(err, "rebuild failed")
				continue
			}
			log.Info("rebuilt")
		}
	}
}

// watchSet maps watched directories to the files of interest inside them.
// A nil file set means every file in the directory.
type watchSet map[string]map[string]bool

func newWatchSet(paths []string) (watchSet, error) {
	set := watchSet{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}

		if info.IsDir() {
			set[abs] = nil
			continue
		}
		dir := filepath.Dir(abs)
		files, seen := set[dir]
		if seen && files == nil {
			continue
		}
		if files == nil {
			files = map[string]bool{}
			set[dir] = files
		}
		files[filepath.Base(abs)] = true
	}
	return set, nil
}

func (s watchSet) dirs() []string {
	out := make([]string, 0, len(s))
	for dir := range s {
		out = append(out, dir)
	}
	sort.Strings(out)
	return out
}

func (s watchSet) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	files, ok := s[filepath.Dir(abs)]
	if !ok {
		return false
	}
	return files == nil || files[filepath.Base(abs)]
}
