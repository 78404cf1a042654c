package catalog

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/storefront/internal/logging"
)

// DefaultReloadDebounce is used when NewWatcher is given a zero debounce.
const DefaultReloadDebounce = 200 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk. A reload that
// fails to parse is logged and the last good catalog stays current.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *logging.Logger

	mu       sync.RWMutex
	current  *Catalog
	onReload func(*Catalog)

	startOnce sync.Once
	started   atomic.Bool
	stopOnce  sync.Once
	stopCh    chan struct{}
	done      chan struct{}
}

// NewWatcher loads path and prepares to watch it. The initial load must
// succeed. Call Start to begin delivering reloads.
func NewWatcher(path string, debounce time.Duration, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	initial, err := Load(abs)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often save by renaming over the file.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fw,
		logger:   logger.WithComponent("catalog-watcher").With("path", abs),
		current:  initial,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// OnReload sets the callback invoked with each successfully reloaded
// catalog. It runs on the watcher goroutine.
func (w *Watcher) OnReload(fn func(*Catalog)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Current returns the last successfully loaded catalog.
func (w *Watcher) Current() *Catalog {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start begins watching in a background goroutine. Only the first call
// starts a loop.
func (w *Watcher) Start() {
	w.startOnce.Do(func() {
		w.started.Store(true)
		go w.watchLoop()
	})
}

// Close stops the watcher and waits for the loop to exit if it was
// started. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
	})
	w.Wait()
	return err
}

// Wait blocks until the loop launched by Start has exited. It returns
// immediately if Start was never called.
func (w *Watcher) Wait() {
	if !w.started.Load() {
		return
	}
	<-w.done
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	// Many editors emit several events per save.
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C
	pending := false

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(w.debounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	c, err := Load(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous catalog", "error", err)
		return
	}

	w.mu.Lock()
	w.current = c
	cb := w.onReload
	w.mu.Unlock()

	w.logger.Info("catalog reloaded", "products", len(c.Products))
	if cb != nil {
		cb(c)
	}
}
