package targetset

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/darkace1998/vkradixsort/archive"
)

// Set holds the currently-loaded archive for each manifest key and keeps
// it fresh by watching the manifest's directory for writes. Callers read
// the current archive via Get; reloads happen on a background goroutine.
type Set struct {
	dir      string
	manifest *Manifest

	watcher *fsnotify.Watcher
	events  chan fsnotify.Event
	errors  chan error
	done    chan struct{}

	mu       sync.RWMutex
	archives map[Key]*archive.Archive
	paths    map[string]Key // resolved absolute path -> key, for event lookup
}

// Open loads the manifest at manifestPath, opens every archive it
// references, and starts watching the manifest's directory for changes to
// those archive files.
func Open(manifestPath string) (*Set, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(manifestPath)
	s := &Set{
		dir:      dir,
		manifest: m,
		events:   make(chan fsnotify.Event),
		errors:   make(chan error),
		done:     make(chan struct{}),
		archives: make(map[Key]*archive.Archive),
		paths:    make(map[string]Key),
	}

	for _, key := range m.Keys() {
		relPath, _ := m.Lookup(key)
		absPath, err := filepath.Abs(filepath.Join(dir, relPath))
		if err != nil {
			return nil, fmt.Errorf("targetset: resolving %s: %w", relPath, err)
		}
		a, err := openArchiveFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("targetset: loading %s: %w", absPath, err)
		}
		s.archives[key] = a
		s.paths[absPath] = key
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("targetset: creating watcher: %w", err)
	}
	s.watcher = w
	if err := s.watcher.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("targetset: watching %s: %w", dir, err)
	}

	go s.start()
	return s, nil
}

// Get returns the currently loaded archive for key.
func (s *Set) Get(key Key) (*archive.Archive, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.archives[key]
	return a, ok
}

// Errors returns the channel carrying watch and reload errors.
func (s *Set) Errors() <-chan error {
	return s.errors
}

// Close stops the background watch goroutine and releases the underlying
// fsnotify watcher.
func (s *Set) Close() error {
	close(s.done)
	return s.watcher.Close()
}

func (s *Set) start() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(ev)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.trySendError(err)
		case <-s.done:
			return
		}
	}
}

func (s *Set) handleEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}

	absPath, err := filepath.Abs(ev.Name)
	if err != nil {
		s.trySendError(err)
		return
	}

	s.mu.RLock()
	key, tracked := s.paths[absPath]
	s.mu.RUnlock()
	if !tracked {
		return
	}

	a, err := openArchiveFile(absPath)
	if err != nil {
		s.trySendError(fmt.Errorf("targetset: reloading %s: %w", absPath, err))
		return
	}

	s.mu.Lock()
	s.archives[key] = a
	s.mu.Unlock()
}

func (s *Set) trySendError(err error) {
	select {
	case s.errors <- err:
	case <-s.done:
	}
}
