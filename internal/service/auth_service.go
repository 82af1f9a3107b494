package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/kv"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the authenticated admin identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CredentialVerifier checks a login attempt and, on success, yields the user
// it authenticates. Swapping the implementation is how a real identity
// provider would be plugged in without touching the session logic.
type CredentialVerifier interface {
	Verify(email, password string) (User, bool)
}

type fixedCredentialVerifier struct {
	email        string
	passwordHash []byte
	user         User
}

// NewFixedCredentialVerifier returns the built-in single-admin verifier.
// There is no backing user database; the site has exactly one editor.
func NewFixedCredentialVerifier() CredentialVerifier {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which DefaultCost is not.
		panic(fmt.Sprintf("hash embedded credential: %v", err))
	}
	return &fixedCredentialVerifier{
		email:        "admin@nishant.dev",
		passwordHash: hash,
		user:         User{ID: "1", Email: "admin@nishant.dev", Name: "Nishant Sinha"},
	}
}

func (v *fixedCredentialVerifier) Verify(email, password string) (User, bool) {
	if !strings.EqualFold(strings.TrimSpace(email), v.email) {
		return User{}, false
	}
	if err := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)); err != nil {
		return User{}, false
	}
	return v.user, true
}

// AuthService gates the admin panel. It holds the current identity in memory
// and mirrors it into the key-value store so a restart stays logged in.
type AuthService struct {
	store    *kv.Store
	verifier CredentialVerifier
	log      zerolog.Logger

	mu   sync.RWMutex
	user *User
}

// NewAuthService constructs the service and restores any persisted session.
func NewAuthService(store *kv.Store, verifier CredentialVerifier, log zerolog.Logger) *AuthService {
	s := &AuthService{store: store, verifier: verifier, log: log}
	s.RestoreSession()
	return s
}

// RestoreSession loads the persisted session record. A malformed record is
// discarded and leaves the service unauthenticated; the call never fails
// outward.
func (s *AuthService) RestoreSession() {
	var user User
	found, err := s.store.GetJSON(kv.KeyAdminUser, &user)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable session record")
		if removeErr := s.store.Remove(kv.KeyAdminUser); removeErr != nil {
			s.log.Warn().Err(removeErr).Msg("failed to clear session record")
		}
		s.setUser(nil)
		return
	}
	if !found {
		s.setUser(nil)
		return
	}
	s.setUser(&user)
}

// Login validates the credential pair. On success the user is persisted and
// returned; on mismatch nothing changes and ErrInvalidCredentials comes back.
func (s *AuthService) Login(email, password string) (User, error) {
	user, ok := s.verifier.Verify(email, password)
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := s.store.SetJSON(kv.KeyAdminUser, user); err != nil {
		return User{}, fmt.Errorf("persist session: %w", err)
	}
	s.setUser(&user)
	return user, nil
}

// Logout clears the session in memory and storage. Idempotent.
func (s *AuthService) Logout() error {
	s.setUser(nil)
	if err := s.store.Remove(kv.KeyAdminUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the authenticated user, or nil when logged out.
func (s *AuthService) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAuthenticated reports whether a user is logged in.
func (s *AuthService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *AuthService) setUser(user *User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}
