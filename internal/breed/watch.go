package breed

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the breeds directory for yaml changes and triggers a
// callback. Plain mtime polling on purpose: profile edits are rare and the
// poll keeps the watcher free of platform-specific notification APIs.
type FileWatcher struct {
	Dir      string
	Interval time.Duration

	onChange  func(string) // called with the path that changed
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher over the yaml files under dir.
func NewFileWatcher(dir string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Dir:       dir,
		Interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *FileWatcher) Start() {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		// prime the mtime cache so startup does not fire callbacks
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

// scan walks the directory and invokes onChange for files whose mtime moved
// forward, including files that appeared since the last scan.
func (w *FileWatcher) scan(prime bool) {
	entries, err := os.ReadDir(w.Dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(w.Dir, e.Name())
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[path]
		w.lastMTime[path] = mt
		if prime {
			continue
		}
		if !seen || mt.After(last) {
			if w.onChange != nil {
				w.onChange(path)
			}
		}
	}
}
