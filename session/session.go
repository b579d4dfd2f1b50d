// Package session holds the authenticated user's identity for the
// lifetime of a client session, persisted so it survives across
// invocations. Restoration is optimistic: a stored record is trusted
// without re-contacting the backend, until an authorized call fails.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// userFile is the well-known name of the stored session record.
const userFile = "user.json"

// DefaultDir is where the session record lives unless overridden:
// a nobull folder under the platform's user config dir.
func DefaultDir() string {
	root, err := os.UserConfigDir()
	if err != nil || root == "" {
		return filepath.Join(os.TempDir(), "nobull")
	}
	return filepath.Join(root, "nobull")
}

// Store reads and writes the persisted user record.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir; empty selects DefaultDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

func (s *Store) path() string { return filepath.Join(s.dir, userFile) }

// Current returns the stored user record, if one exists and parses. A
// missing or corrupt file simply means anonymous.
func (s *Store) Current() (stockapp.User, bool) {
	content, err := os.ReadFile(s.path())
	if err != nil {
		return stockapp.User{}, false
	}
	var u stockapp.User
	if err := json.Unmarshal(content, &u); err != nil {
		return stockapp.User{}, false
	}
	return u, true
}

// Save persists the user record, creating the directory as needed.
func (s *Store) Save(u stockapp.User) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create session dir %q: %w", s.dir, err)
	}
	content, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), content, 0o600)
}

// Clear removes the stored record. Clearing an absent record is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Authenticator is the slice of the backend API the session needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (stockapp.User, error)
	Register(ctx context.Context, email, password, username string) (stockapp.User, error)
}

// Session is the explicit session object handed to the views: current
// user plus login/register/logout capabilities. It starts in whatever
// state the store restores.
type Session struct {
	store *Store
	auth  Authenticator
	user  *stockapp.User
}

// Open restores a session from the store. No network call is made; an
// existing parseable record yields an authenticated session immediately.
func Open(store *Store, auth Authenticator) *Session {
	s := &Session{store: store, auth: auth}
	if u, ok := store.Current(); ok {
		s.user = &u
	}
	return s
}

// User returns the authenticated user, or false when anonymous.
func (s *Session) User() (stockapp.User, bool) {
	if s.user == nil {
		return stockapp.User{}, false
	}
	return *s.user, true
}

// Login authenticates against the backend and persists the returned
// record. On failure the session stays in its previous state.
func (s *Session) Login(ctx context.Context, email, password string) (stockapp.User, error) {
	u, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return stockapp.User{}, err
	}
	return s.adopt(u)
}

// Register creates an account and, like the web client, treats it as an
// immediate login.
func (s *Session) Register(ctx context.Context, email, password, username string) (stockapp.User, error) {
	u, err := s.auth.Register(ctx, email, password, username)
	if err != nil {
		return stockapp.User{}, err
	}
	return s.adopt(u)
}

func (s *Session) adopt(u stockapp.User) (stockapp.User, error) {
	if err := s.store.Save(u); err != nil {
		return stockapp.User{}, fmt.Errorf("authenticated but could not persist session: %w", err)
	}
	s.user = &u
	return u, nil
}

// Logout clears the stored record and returns the session to anonymous.
func (s *Session) Logout() error {
	s.user = nil
	return s.store.Clear()
}
