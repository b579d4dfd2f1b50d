package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	stockapp "github.com/johnmangieri5262-bit/stock-app"
)

// fakeAuth counts calls so tests can assert that restoration never
// touches the network.
type fakeAuth struct {
	calls int
	user  stockapp.User
	err   error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (stockapp.User, error) {
	f.calls++
	return f.user, f.err
}

func (f *fakeAuth) Register(_ context.Context, email, password, username string) (stockapp.User, error) {
	f.calls++
	return f.user, f.err
}

func TestRestoreWithoutNetwork(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := store.Save(stockapp.User{ID: 7, Email: "a@b.c", IsVerified: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A fresh process start: new store, new session.
	auth := &fakeAuth{}
	s := Open(NewStore(dir), auth)
	u, ok := s.User()
	if !ok {
		t.Fatal("User() = anonymous, want restored session")
	}
	if u.ID != 7 || u.Email != "a@b.c" {
		t.Errorf("User() = %+v, want the stored record", u)
	}
	if auth.calls != 0 {
		t.Errorf("auth calls = %d, want 0 (restore is optimistic)", auth.calls)
	}
}

func TestCorruptRecordMeansAnonymous(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := Open(NewStore(dir), &fakeAuth{})
	if _, ok := s.User(); ok {
		t.Error("User() = authenticated from a corrupt record, want anonymous")
	}
}

func TestLoginPersistsAndLogoutClears(t *testing.T) {
	dir := t.TempDir()
	auth := &fakeAuth{user: stockapp.User{ID: 9, Email: "x@y.z"}}
	s := Open(NewStore(dir), auth)

	if _, err := s.Login(context.Background(), "x@y.z", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if u, ok := NewStore(dir).Current(); !ok || u.ID != 9 {
		t.Errorf("stored record = %+v %v, want id 9 persisted", u, ok)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok := s.User(); ok {
		t.Error("User() = authenticated after logout")
	}
	if _, ok := NewStore(dir).Current(); ok {
		t.Error("stored record survives logout")
	}
	// Logging out twice is fine.
	if err := s.Logout(); err != nil {
		t.Errorf("second Logout() error = %v", err)
	}
}

func TestFailedLoginLeavesStateIntact(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	store.Save(stockapp.User{ID: 7})

	auth := &fakeAuth{err: errors.New("Incorrect email or password")}
	s := Open(NewStore(dir), auth)
	if _, err := s.Login(context.Background(), "a", "b"); err == nil {
		t.Fatal("Login() = nil error, want failure")
	}
	if u, ok := s.User(); !ok || u.ID != 7 {
		t.Errorf("User() after failed login = %+v %v, want previous state intact", u, ok)
	}
}
