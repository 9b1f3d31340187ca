package config

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it is written or replaced and
// sends each successfully parsed result on the returned channel. Reload
// errors are logged and the previous configuration stays in effect. The
// channel is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often save by renaming over the file, which drops a watch on
	// the file itself.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	out := make(chan *Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Printf("WARN Watch: Keeping previous config: %v", err)
					continue
				}
				log.Printf("INFO: Reloaded config from %s", abs)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("WARN Watch: %v", err)
			}
		}
	}()
	return out, nil
}
