package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	configDirName   = "roost"
	sessionFileName = "session.json"
)

// CredentialStore persists the secret half of a session. The default
// implementation is the OS keychain; tests inject an in-memory one.
type CredentialStore interface {
	SaveSecret(email, secret string) error
	LoadSecret(email string) (string, error)
	DeleteSecret(email string) error
}

// sessionFile is the on-disk shape of the session. The credential secret
// lives in the CredentialStore, not in this file.
type sessionFile struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Scheme Scheme `json:"scheme"`
}

// Store is the single source of truth for the current session. It is
// constructed explicitly and passed to whatever needs it; there is no
// package-level instance.
type Store struct {
	path  string
	creds CredentialStore

	mu     sync.Mutex
	cached *Session
}

// NewStore creates a session store backed by the given file path and
// credential store
func NewStore(path string, creds CredentialStore) *Store {
	return &Store{path: path, creds: creds}
}

// DefaultPath returns the session file path under the user config dir
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", configDirName, sessionFileName), nil
}

// Load reads the persisted session. Missing or malformed state never fails:
// anything unreadable degrades to the anonymous session. An identity whose
// secret cannot be recovered from the credential store is likewise treated
// as anonymous, so identity and credential are always both present or both
// absent.
func (s *Store) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Anonymous()
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Anonymous()
	}
	if f.Email == "" || (f.Scheme != SchemeBearer && f.Scheme != SchemeBasic) {
		return Anonymous()
	}

	secret, err := s.creds.LoadSecret(f.Email)
	if err != nil || secret == "" {
		return Anonymous()
	}

	cred := Credential{Scheme: f.Scheme, Secret: secret}
	return Session{
		Identity:   &Identity{Email: f.Email, Name: f.Name, Role: ParseRole(f.Role)},
		Credential: &cred,
	}
}

// Save persists the full session: identity and credential together, never
// partially. The file is written via temp-file rename so a concurrent
// reader never observes a torn write. Saving an anonymous session is the
// same as Clear.
func (s *Store) Save(sess Session) error {
	if !sess.Authenticated() {
		return s.Clear()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f := sessionFile{
		Email:  sess.Identity.Email,
		Name:   sess.Identity.Name,
		Role:   string(sess.Identity.Role),
		Scheme: sess.Credential.Scheme,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.creds.SaveSecret(f.Email, sess.Credential.Secret); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	cached := sess
	s.cached = &cached
	return nil
}

// Clear removes all persisted session state, reverting to anonymous
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Best effort: read the file to learn which keyring entry to drop
	if data, err := os.ReadFile(s.path); err == nil {
		var f sessionFile
		if json.Unmarshal(data, &f) == nil && f.Email != "" {
			_ = s.creds.DeleteSecret(f.Email)
		}
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	anon := Anonymous()
	s.cached = &anon
	return nil
}

// Current returns the session, loading it from disk on first access per
// process lifetime. Save and Clear refresh the cache, so a Save followed
// by Current in the same process always observes the just-written value.
func (s *Store) Current() Session {
	s.mu.Lock()
	if s.cached != nil {
		sess := *s.cached
		s.mu.Unlock()
		return sess
	}
	s.mu.Unlock()

	sess := s.Load()

	s.mu.Lock()
	s.cached = &sess
	s.mu.Unlock()
	return sess
}
