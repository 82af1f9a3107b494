package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/kv"
)

func TestLoginAndRestoreSession(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewAuthService(store, NewFixedCredentialVerifier(), zerolog.Nop())
	if svc.IsAuthenticated() {
		t.Fatalf("fresh service must start unauthenticated")
	}

	user, err := svc.Login("admin@nishant.dev", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "1" || user.Name != "Nishant Sinha" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}

	// A fresh service over the same store simulates a process restart.
	restored := NewAuthService(store, NewFixedCredentialVerifier(), zerolog.Nop())
	current := restored.CurrentUser()
	if current == nil || current.ID != user.ID {
		t.Fatalf("session not restored: %+v", current)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewAuthService(store, NewFixedCredentialVerifier(), zerolog.Nop())

	cases := []struct{ email, password string }{
		{"admin@nishant.dev", "wrong"},
		{"someone@else.dev", "admin123"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q/%q, got %v", tc.email, tc.password, err)
		}
	}

	if svc.IsAuthenticated() {
		t.Fatalf("failed logins must leave service unauthenticated")
	}
	if _, found, _ := store.Get(kv.KeyAdminUser); found {
		t.Fatalf("failed login must not persist a session")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewAuthService(store, NewFixedCredentialVerifier(), zerolog.Nop())
	if _, err := svc.Login("admin@nishant.dev", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout")
	}
	if _, found, _ := store.Get(kv.KeyAdminUser); found {
		t.Fatalf("session record must be removed on logout")
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("second logout must not fail: %v", err)
	}
}

func TestRestoreSessionDiscardsMalformedRecord(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	if err := store.Set(kv.KeyAdminUser, "{broken"); err != nil {
		t.Fatalf("seed malformed session failed: %v", err)
	}

	svc := NewAuthService(store, NewFixedCredentialVerifier(), zerolog.Nop())
	if svc.IsAuthenticated() {
		t.Fatalf("malformed session must not authenticate")
	}
	if _, found, _ := store.Get(kv.KeyAdminUser); found {
		t.Fatalf("malformed session record must be discarded")
	}
}
