package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "roost-cli"

// keyringKey returns a unique key for storing credentials per identity
func keyringKey(email string) string {
	return fmt.Sprintf("credential-%s", email)
}

// KeyringStore persists credential secrets in the OS keychain/credential
// manager. It is the production CredentialStore.
type KeyringStore struct{}

func (KeyringStore) SaveSecret(email, secret string) error {
	if err := keyring.Set(keyringService, keyringKey(email), secret); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (KeyringStore) LoadSecret(email string) (string, error) {
	secret, err := keyring.Get(keyringService, keyringKey(email))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("not authenticated. Please run 'roost login' first")
		}
		return "", fmt.Errorf("failed to load credential: %w", err)
	}
	return secret, nil
}

func (KeyringStore) DeleteSecret(email string) error {
	if err := keyring.Delete(keyringService, keyringKey(email)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
