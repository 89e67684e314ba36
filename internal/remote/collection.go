// Package remote is the API-client counterpart of the admin screens: one
// generic view over a backend collection that owns the load lifecycle and,
// for admin collections, the create/update/delete path.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/session"
)

// Status is the lifecycle state of a collection view
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Fields is the set of named values submitted with a create or update
type Fields map[string]string

// ImageFile is an optional binary attachment for a create or update
type ImageFile struct {
	Name    string
	Content []byte
}

// Config describes one backend collection
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:5000
	BaseURL string
	// Path is the read endpoint, e.g. /api/projects
	Path string
	// AdminPath is the mutation endpoint when it differs from Path,
	// e.g. /api/admin/projects. Empty means Path.
	AdminPath string
	// Session supplies the token for mutations and absorbs 401 purges
	Session *session.Manager
	// Required lists field names validated client-side before any
	// create/update request is sent
	Required []string
	// Singleton marks endpoints that return one object instead of an array
	Singleton bool
	// Timeout bounds each request. The original client had none; this
	// default is a deliberate improvement. Zero means 30s.
	Timeout time.Duration
}

// Collection is a client-side view over one backend collection.
// Items are kept in server order. A failed load never clobbers items;
// a successful mutation reconciles by reloading the full collection.
type Collection[T any] struct {
	cfg    Config
	client *http.Client

	// ID extracts the server-assigned id from an item; required for
	// Update and Remove
	ID func(T) uint

	mu       sync.Mutex
	items    []T
	status   Status
	lastErr  string
	mutating bool
}

// New creates a collection view. It starts Idle with no items.
func New[T any](cfg Config, id func(T) uint) *Collection[T] {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.AdminPath == "" {
		cfg.AdminPath = cfg.Path
	}
	return &Collection[T]{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		ID:     id,
	}
}

// Status returns the current lifecycle state
func (c *Collection[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the last error message, empty outside the Error state
func (c *Collection[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Items returns the last successfully loaded items in server order
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Load fetches the collection. Entering Loading clears any previous
// error. Racing Loads are allowed; the last response wins.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.status = StatusLoading
	c.lastErr = ""
	c.mu.Unlock()

	items, err := c.fetch(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		c.lastErr = err.Error()
		return err
	}
	c.items = items
	c.status = StatusLoaded
	return nil
}

func (c *Collection[T]) fetch(ctx context.Context) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+c.cfg.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if c.cfg.Singleton {
		var one T
		if err := json.NewDecoder(resp.Body).Decode(&one); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return []T{one}, nil
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create submits a new item and reconciles by reloading
func (c *Collection[T]) Create(ctx context.Context, fields Fields, image *ImageFile) error {
	if err := c.validate(fields); err != nil {
		return err
	}
	return c.mutate(ctx, http.MethodPost, c.cfg.BaseURL+c.cfg.AdminPath, fields, image)
}

// Update modifies an existing item and reconciles by reloading.
// The id must belong to the last loaded items.
func (c *Collection[T]) Update(ctx context.Context, id uint, fields Fields, image *ImageFile) error {
	if err := c.validate(fields); err != nil {
		return err
	}
	if !c.contains(id) {
		return fmt.Errorf("no item with id %d", id)
	}
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s%s/%d", c.cfg.BaseURL, c.cfg.AdminPath, id), fields, image)
}

// Remove deletes an existing item and reconciles by reloading
func (c *Collection[T]) Remove(ctx context.Context, id uint) error {
	if !c.contains(id) {
		return fmt.Errorf("no item with id %d", id)
	}
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s%s/%d", c.cfg.BaseURL, c.cfg.AdminPath, id), nil, nil)
}

// Save upserts a singleton resource (mission-vision, about-info) as JSON
func (c *Collection[T]) Save(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	if !c.beginMutation() {
		return ErrMutationPending
	}
	defer c.endMutation()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.cfg.BaseURL+c.cfg.AdminPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachToken(req)

	if err := c.do(req); err != nil {
		return err
	}
	return c.Load(ctx)
}

// validate enforces the client-side required-field check; a violation
// is reported immediately with no network round-trip
func (c *Collection[T]) validate(fields Fields) error {
	for _, name := range c.cfg.Required {
		if strings.TrimSpace(fields[name]) == "" {
			return &ValidationError{Field: name}
		}
	}
	return nil
}

func (c *Collection[T]) contains(id uint) bool {
	if c.ID == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.ID(item) == id {
			return true
		}
	}
	return false
}

func (c *Collection[T]) beginMutation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mutating {
		return false
	}
	c.mutating = true
	return true
}

func (c *Collection[T]) endMutation() {
	c.mu.Lock()
	c.mutating = false
	c.mu.Unlock()
}

// mutate runs one write request and reconciles with a full reload on
// success. Items are left untouched on any failure.
func (c *Collection[T]) mutate(ctx context.Context, method, url string, fields Fields, image *ImageFile) error {
	if !c.beginMutation() {
		return ErrMutationPending
	}
	defer c.endMutation()

	var req *http.Request
	var err error

	if fields == nil && image == nil {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
	} else {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for name, value := range fields {
			if err := writer.WriteField(name, value); err != nil {
				return fmt.Errorf("failed to encode form field: %w", err)
			}
		}
		if image != nil {
			part, err := writer.CreateFormFile("image", image.Name)
			if err != nil {
				return fmt.Errorf("failed to encode image: %w", err)
			}
			if _, err := io.Copy(part, bytes.NewReader(image.Content)); err != nil {
				return fmt.Errorf("failed to encode image: %w", err)
			}
		}
		if err := writer.Close(); err != nil {
			return fmt.Errorf("failed to finalize form: %w", err)
		}

		req, err = http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
	}

	c.attachToken(req)

	if err := c.do(req); err != nil {
		return err
	}

	// Reconciliation policy: always reload the full collection
	return c.Load(ctx)
}

func (c *Collection[T]) attachToken(req *http.Request) {
	if c.cfg.Session != nil {
		if token := c.cfg.Session.Token(); token != "" {
			req.Header.Set("x-auth-token", token)
		}
	}
}

// do executes a mutation request and maps failure classes: transport
// errors and non-2xx become generic failures, a 401 purges the session
func (c *Collection[T]) do(req *http.Request) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("server error")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.cfg.Session != nil {
			c.cfg.Session.Purge()
		}
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}
