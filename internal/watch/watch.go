// Package watch signals when any of a set of input files changes, so a
// resolution can be re-run while schemas and overrides are being edited.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/pkgopts/internal/ctxlog"
)

// DefaultDebounce is the quiet period after the last event before a change
// is signalled.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors input files and directories.
//
// Single files are watched through their parent directory, because editors
// commonly replace a file instead of writing it in place.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]bool
	dirs      []string
	events    chan struct{}
	stop      chan struct{}
	debounce  time.Duration
	timer     *time.Timer
	mu        sync.Mutex
	closed    bool
	done      chan struct{}
	closeOnce sync.Once
}

// New starts watching paths. Each path may be a file or a directory;
// directories are watched recursively.
func New(ctx context.Context, debounce time.Duration, paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		fsWatcher: fsw,
		files:     make(map[string]bool),
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
		debounce:  debounce,
		done:      make(chan struct{}),
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.run(ctx)
	return w, nil
}

func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	if info.IsDir() {
		w.dirs = append(w.dirs, abs)
		return w.addRecursive(abs)
	}
	w.files[abs] = true
	return w.fsWatcher.Add(filepath.Dir(abs))
}

// addRecursive adds a directory and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// relevant reports whether an event on name concerns a watched input.
func (w *Watcher) relevant(name string) bool {
	if w.files[name] {
		return true
	}
	for _, dir := range w.dirs {
		if name == dir || strings.HasPrefix(name, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) run(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		close(w.done)
	}()

	for {
		select {
		case <-w.stop:
			return
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			logger.Debug("Input changed.", "path", event.Name, "op", event.Op.String())

			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.timer = time.AfterFunc(w.debounce, w.signal)
			w.mu.Unlock()

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(event.Name)
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("File watcher error.", "error", err)
		}
	}
}

func (w *Watcher) signal() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// Changes returns a channel that receives a value after inputs change.
// Bursts of events are coalesced into one signal.
func (w *Watcher) Changes() <-chan struct{} {
	return w.events
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.stop)
		<-w.done
		err = w.fsWatcher.Close()
	})
	return err
}
