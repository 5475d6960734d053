package content

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reporting.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports batches of changed content files. Bursts of events, as
// produced by editors writing through temp files, collapse into one call.
type Watcher struct {
	Root     string
	Exclude  []string
	Debounce time.Duration
	OnChange func(paths []string)
}

// Run watches Root and its subdirectories until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.Root); err != nil {
		return err
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var (
		mu      sync.Mutex
		pending = map[string]bool{}
		timer   *time.Timer
	)
	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		pending = map[string]bool{}
		mu.Unlock()
		if len(paths) > 0 && w.OnChange != nil {
			w.OnChange(paths)
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			rel, err := filepath.Rel(w.Root, event.Name)
			if err != nil {
				rel = event.Name
			}
			rel = filepath.ToSlash(rel)
			if MatchesAny(rel, w.excludes()) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addTree(fw, event.Name); err != nil {
					log.Printf("content: watching new directory %s: %v", event.Name, err)
				}
			}

			mu.Lock()
			pending[rel] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, flush)
			mu.Unlock()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("content: watcher error: %v", err)
		}
	}
}

func (w *Watcher) excludes() []string {
	if w.Exclude == nil {
		return DefaultExcludes
	}
	return w.Exclude
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", p, err)
		}
		if !d.IsDir() {
			return nil
		}
		if w.excludedDir(p) {
			return filepath.SkipDir
		}
		if err := fw.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		return nil
	})
}

// excludedDir reports whether a file directly inside dir would be excluded.
func (w *Watcher) excludedDir(dir string) bool {
	rel, err := filepath.Rel(w.Root, dir)
	if err != nil || rel == "." {
		return false
	}
	return MatchesAny(filepath.ToSlash(filepath.Join(rel, "_")), w.excludes())
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
