package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

type keyringFieldStore struct {
	service string
}

// NewKeyringCache returns a [CredentialCache] backed by the OS keyring
// (Keychain, Secret Service, Credential Manager) under the given service
// name. Values are encrypted at the OS level.
func NewKeyringCache(service string) CredentialCache {
	return newCache(&keyringFieldStore{service: service})
}

func (k *keyringFieldStore) set(_ context.Context, name, value string) error {
	if err := keyring.Set(k.service, name, value); err != nil {
		return fmt.Errorf("%w: keyring set %s: %v", ErrStorage, name, err)
	}
	return nil
}

func (k *keyringFieldStore) get(_ context.Context, name string) (string, error) {
	value, err := keyring.Get(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrFieldNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: keyring get %s: %v", ErrStorage, name, err)
	}
	return value, nil
}

func (k *keyringFieldStore) delete(_ context.Context, name string) error {
	err := keyring.Delete(k.service, name)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: keyring delete %s: %v", ErrStorage, name, err)
	}
	return nil
}
