// Package session holds the admin credential for headless API clients.
//
// The session is persisted as two files under a state directory, "token"
// (the opaque credential) and "user" (JSON profile), the same layout the
// browser admin panel keeps in local storage. When the directory cannot
// be read or written the session degrades to memory for the process
// lifetime.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

var (
	// ErrNoSession is returned when an operation requires a login first
	ErrNoSession = errors.New("not logged in")
	// ErrInvalidCredentials is returned when the server rejects a login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the profile returned by the login endpoint
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Session is an authenticated admin identity
type Session struct {
	Token string
	User  User
}

// Store persists one session under a state directory
type Store struct {
	mu  sync.Mutex
	dir string
	mem *Session // fallback when the directory is unusable
}

// NewStore creates a session store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Current returns the stored session, if any
func (s *Store) Current() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mem != nil {
		copy := *s.mem
		return &copy, true
	}

	tokenData, err := os.ReadFile(filepath.Join(s.dir, tokenKey))
	if err != nil {
		return nil, false
	}
	token := strings.TrimSpace(string(tokenData))
	if token == "" {
		return nil, false
	}

	sess := Session{Token: token}
	if userData, err := os.ReadFile(filepath.Join(s.dir, userKey)); err == nil {
		_ = json.Unmarshal(userData, &sess.User)
	}
	return &sess, true
}

// Save persists a session. Storage failures fall back to memory.
func (s *Store) Save(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.mem = &sess
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenKey), []byte(sess.Token), 0600); err != nil {
		s.mem = &sess
		return
	}
	userData, _ := json.Marshal(sess.User)
	_ = os.WriteFile(filepath.Join(s.dir, userKey), userData, 0600)
	s.mem = nil
}

// Purge removes the persisted session. Always succeeds locally.
func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem = nil
	_ = os.Remove(filepath.Join(s.dir, tokenKey))
	_ = os.Remove(filepath.Join(s.dir, userKey))
}

// Manager drives login/logout against the API and owns the store
type Manager struct {
	BaseURL string
	Client  *http.Client
	store   *Store
}

// NewManager creates a session manager for the API at baseURL
func NewManager(baseURL, stateDir string) *Manager {
	return &Manager{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
		store:   NewStore(stateDir),
	}
}

// Store exposes the underlying session store
func (m *Manager) Store() *Store {
	return m.store
}

// Require returns the current session or ErrNoSession
func (m *Manager) Require() (*Session, error) {
	sess, ok := m.store.Current()
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Token returns the current token, or "" when logged out
func (m *Manager) Token() string {
	sess, ok := m.store.Current()
	if !ok {
		return ""
	}
	return sess.Token
}

// Purge drops the session locally, the shared handling for a 401
func (m *Manager) Purge() {
	m.store.Purge()
}

// Login authenticates against /api/auth/login and persists the result.
// Nothing is persisted on failure.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}

	sess := Session{Token: body.Token, User: body.User}
	m.store.Save(sess)
	return &sess, nil
}

// Logout purges the local session. No network call is made.
func (m *Manager) Logout() {
	m.store.Purge()
}
