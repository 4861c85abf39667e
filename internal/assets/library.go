package assets

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after a watcher-driven library change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind string, path string)

// Info describes one file in the local upload tree.
type Info struct {
	Path    string    `json:"path"` // slash-separated, relative to the upload root
	URL     string    `json:"url"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Library is an in-memory view of the local upload directory, kept current
// by an fsnotify watcher so the admin asset listing never has to walk the
// disk per request.
type Library struct {
	root    string
	urlBase string

	mu    sync.RWMutex
	files map[string]Info
}

// NewLibrary builds a library over the local store's directory and loads the
// initial listing.
func NewLibrary(local *LocalStore) (*Library, error) {
	l := &Library{
		root:    local.Root,
		urlBase: strings.TrimRight(local.URLBase, "/"),
		files:   make(map[string]Info),
	}
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return nil, err
	}
	if err := l.rescan(); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns a snapshot of the library sorted by path.
func (l *Library) List() []Info {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Info, 0, len(l.files))
	for _, info := range l.files {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (l *Library) set(rel string, fi os.FileInfo) {
	l.mu.Lock()
	l.files[rel] = Info{
		Path:    rel,
		URL:     l.urlBase + "/" + rel,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
	l.mu.Unlock()
}

func (l *Library) delete(rel string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.files[rel]; !ok {
		return false
	}
	delete(l.files, rel)
	return true
}

func (l *Library) rescan() error {
	seen := make(map[string]struct{})
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(l.root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = struct{}{}
		if fi, statErr := d.Info(); statErr == nil {
			l.set(rel, fi)
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.mu.Lock()
	for rel := range l.files {
		if _, ok := seen[rel]; !ok {
			delete(l.files, rel)
		}
	}
	l.mu.Unlock()
	return nil
}

// Watch keeps the library in sync with the upload directory until ctx is
// cancelled, calling cb (if non-nil) after each change.
//
// New directories created at runtime are added to the watch list. Rename
// events only fire on the old path, so they schedule a short debounced
// rescan to pick up the file's new location.
func (l *Library) Watch(ctx context.Context, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirsRecursive(w, l.root); err != nil {
		return err
	}

	logger.Info("asset library: watching", slog.String("root", l.root))

	var rescanTimer *time.Timer
	var rescanCh <-chan time.Time

	scheduleRescan := func() {
		if rescanTimer == nil {
			rescanTimer = time.NewTimer(200 * time.Millisecond)
			rescanCh = rescanTimer.C
		} else {
			rescanTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rescanTimer != nil {
				rescanTimer.Stop()
			}
			logger.Info("asset library: stopped")
			return nil

		case <-rescanCh:
			if err := l.rescan(); err != nil {
				logger.Warn("asset library: rescan failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("asset library: add new dir failed",
							slog.String("path", ev.Name), slog.String("error", addErr.Error()))
					}
					scheduleRescan()
					continue
				}
			}

			rel, relErr := filepath.Rel(l.root, ev.Name)
			if relErr != nil {
				continue
			}
			rel = filepath.ToSlash(rel)

			switch {
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				fi, statErr := os.Stat(ev.Name)
				if statErr != nil || fi.IsDir() {
					continue
				}
				kind := "updated"
				if ev.Op&fsnotify.Create != 0 {
					kind = "created"
				}
				l.set(rel, fi)
				logger.Debug("asset library: indexed", slog.String("path", rel), slog.String("op", kind))
				if cb != nil {
					cb(kind, rel)
				}

			case ev.Op&fsnotify.Remove != 0:
				if l.delete(rel) {
					logger.Debug("asset library: deleted", slog.String("path", rel))
					if cb != nil {
						cb("deleted", rel)
					}
				}

			case ev.Op&fsnotify.Rename != 0:
				if l.delete(rel) {
					if cb != nil {
						cb("deleted", rel)
					}
				}
				scheduleRescan()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("asset library: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
