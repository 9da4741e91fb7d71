package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls refit for each of files whenever it is written or re-created,
// until ctx is done. Directories are watched rather than the files, as
// editors tend to replace files when saving.
func watch(ctx context.Context, files []string, refit func(string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	watched := make(map[string]string, len(files)) // absolute path -> argument
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = file
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return err
			}
			dirs[dir] = true
		}
	}
	tracer().Infof("watching %d files", len(watched))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			file, found := watched[filepath.Clean(event.Name)]
			if !found || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			tracer().Debugf("%s: %s", event.Op, file)
			if err := refit(file); err != nil {
				tracer().Errorf("%v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf("watching: %v", err)
		}
	}
}
