package session

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCreds is a simple in-memory credential store for testing
type memCreds struct {
	secrets map[string]string
}

func newMemCreds() *memCreds {
	return &memCreds{secrets: make(map[string]string)}
}

func (m *memCreds) SaveSecret(email, secret string) error {
	m.secrets[email] = secret
	return nil
}

func (m *memCreds) LoadSecret(email string) (string, error) {
	secret, exists := m.secrets[email]
	if !exists {
		return "", fmt.Errorf("not authenticated. Please run 'roost login' first")
	}
	return secret, nil
}

func (m *memCreds) DeleteSecret(email string) error {
	delete(m.secrets, email)
	return nil
}

func testStore(t *testing.T) (*Store, *memCreds, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	creds := newMemCreds()
	return NewStore(path, creds), creds, path
}

func authenticatedSession() Session {
	cred := Bearer("token-abc")
	return Session{
		Identity:   &Identity{Email: "alice@example.com", Name: "Alice", Role: RoleAgent},
		Credential: &cred,
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, _, _ := testStore(t)

	require.NoError(t, store.Save(authenticatedSession()))

	loaded := store.Load()
	require.True(t, loaded.Authenticated())
	assert.Equal(t, "alice@example.com", loaded.Identity.Email)
	assert.Equal(t, "Alice", loaded.Identity.Name)
	assert.Equal(t, RoleAgent, loaded.Identity.Role)
	assert.Equal(t, SchemeBearer, loaded.Credential.Scheme)
	assert.Equal(t, "token-abc", loaded.Credential.Secret)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store, _, _ := testStore(t)

	sess := store.Load()
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.Identity)
	assert.Nil(t, sess.Credential)
}

func TestStoreLoadMalformedFile(t *testing.T) {
	malformed := []string{
		"not json at all",
		"{\"email\": 42}",
		"{}",
		"{\"email\": \"a@b.com\", \"scheme\": \"carrier-pigeon\"}",
		"",
	}

	for _, blob := range malformed {
		store, _, path := testStore(t)
		require.NoError(t, os.WriteFile(path, []byte(blob), 0600))

		sess := store.Load()
		assert.False(t, sess.Authenticated(), "blob %q should load as anonymous", blob)
		assert.Nil(t, sess.Identity)
	}
}

func TestStoreLoadIdentityWithoutSecret(t *testing.T) {
	store, creds, _ := testStore(t)
	require.NoError(t, store.Save(authenticatedSession()))

	// Keyring entry disappears out from under the file: the session must
	// degrade to fully anonymous, not half-authenticated
	require.NoError(t, creds.DeleteSecret("alice@example.com"))

	sess := store.Load()
	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.Identity)
}

func TestStoreClear(t *testing.T) {
	store, creds, path := testStore(t)
	require.NoError(t, store.Save(authenticatedSession()))

	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = creds.LoadSecret("alice@example.com")
	assert.Error(t, err)
	assert.False(t, store.Load().Authenticated())

	// Clearing an already-anonymous store is fine
	require.NoError(t, store.Clear())
}

func TestStoreCurrentCaching(t *testing.T) {
	store, _, _ := testStore(t)

	assert.False(t, store.Current().Authenticated())

	// Save in the same process must be observed by the next Current
	require.NoError(t, store.Save(authenticatedSession()))
	sess := store.Current()
	require.True(t, sess.Authenticated())
	assert.Equal(t, "alice@example.com", sess.Identity.Email)

	require.NoError(t, store.Clear())
	assert.False(t, store.Current().Authenticated())
}

func TestStoreSaveAnonymousClears(t *testing.T) {
	store, _, path := testStore(t)
	require.NoError(t, store.Save(authenticatedSession()))

	require.NoError(t, store.Save(Anonymous()))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.False(t, store.Current().Authenticated())
}
