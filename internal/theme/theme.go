// Package theme owns the sitewide dark/light display mode and its persistence.
package theme

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Mode is the display mode, "dark" or "light"
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"

	// StorageKey is the fixed key the mode is persisted under
	StorageKey = "site-theme"
)

// Valid reports whether m is a recognized mode
func (m Mode) Valid() bool {
	return m == Dark || m == Light
}

// Store persists the theme mode across restarts
type Store interface {
	Read(key string) (string, error)
	Write(key, value string) error
}

// FileStore persists values as small files under a directory
type FileStore struct {
	Dir string
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) Read(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, key))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Write(key, value string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, key), []byte(value), 0644)
}

// Controller owns the current mode. Reads are safe from any goroutine;
// the toggle entry point is the only mutator. A failing store never
// surfaces to callers: the controller keeps working in memory only.
type Controller struct {
	mu    sync.RWMutex
	mode  Mode
	store Store
}

// New initializes a controller from the persisted value, defaulting to
// dark when nothing valid was stored. A nil store means memory-only.
func New(store Store) *Controller {
	mode := Dark
	if store != nil {
		if raw, err := store.Read(StorageKey); err == nil {
			if m := Mode(raw); m.Valid() {
				mode = m
			}
		}
	}
	return &Controller{mode: mode, store: store}
}

// Mode returns the current mode. No side effects.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Toggle flips dark <-> light and persists the new value synchronously.
// Storage failures are ignored.
func (c *Controller) Toggle() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == Dark {
		c.mode = Light
	} else {
		c.mode = Dark
	}

	if c.store != nil {
		_ = c.store.Write(StorageKey, string(c.mode))
	}

	return c.mode
}
