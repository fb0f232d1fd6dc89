// Package saved maintains the per-identity set of listings a user has
// marked as favorites. The set is keyed by identity email and survives
// logout; it is client-held state, not session state.
package saved

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/roost-dev/roost/internal/cli/session"
)

const savedFileName = "saved.json"

// Store persists saved listing ids as an explicit two-level map
// (email -> ids) in a single JSON file. Parse and storage errors degrade
// to the empty set; saving favorites must never break the command that
// triggered it.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a saved-listing store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the saved-listings file path under the user config dir
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "roost", savedFileName), nil
}

// List returns the saved listing ids for the identity, in insertion order
// and without duplicates. A nil or unknown identity has an empty list.
func (s *Store) List(identity *session.Identity) []string {
	if identity == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()[identity.Email]
}

// IsSaved reports whether the listing is in the identity's saved set.
// Ids are compared as normalized strings so numeric and string ids from
// different endpoints agree.
func (s *Store) IsSaved(identity *session.Identity, propertyID string) bool {
	if identity == nil {
		return false
	}
	id := normalizeID(propertyID)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.load()[identity.Email] {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle flips the saved state of a listing: inserting returns true ("now
// saved"), removing returns false ("now removed"). A nil identity returns
// false without mutating anything; the caller is expected to route the
// user to login.
func (s *Store) Toggle(identity *session.Identity, propertyID string) bool {
	if identity == nil {
		return false
	}
	id := normalizeID(propertyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	sets := s.load()
	ids := sets[identity.Email]

	for i, existing := range ids {
		if existing == id {
			sets[identity.Email] = append(ids[:i:i], ids[i+1:]...)
			s.save(sets)
			return false
		}
	}

	sets[identity.Email] = append(ids, id)
	s.save(sets)
	return true
}

// load reads the whole saved-listings map, deduplicating entries. Any
// read or parse failure yields an empty map.
func (s *Store) load() map[string][]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string][]string{}
	}

	var sets map[string][]string
	if err := json.Unmarshal(data, &sets); err != nil || sets == nil {
		return map[string][]string{}
	}

	for email, ids := range sets {
		seen := make(map[string]struct{}, len(ids))
		deduped := ids[:0]
		for _, raw := range ids {
			id := normalizeID(raw)
			if _, ok := seen[id]; ok || id == "" {
				continue
			}
			seen[id] = struct{}{}
			deduped = append(deduped, id)
		}
		sets[email] = deduped
	}
	return sets
}

// save writes the map back, best effort: storage failures are swallowed
// so a full disk never turns a save action into a crash
func (s *Store) save(sets map[string][]string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return
	}
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return
	}
	_ = os.Rename(tmp, s.path)
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
