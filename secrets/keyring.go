package secrets

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// service namespaces our entries in the OS credential store.
const service = "backand"

// Keyring stores secrets in the operating system keychain
// (Keychain, Secret Service, Credential Manager).
type Keyring struct{}

var _ Store = Keyring{}

func NewKeyring() Keyring {
	return Keyring{}
}

func (Keyring) Get(key string) (string, error) {
	v, err := keyring.Get(service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (Keyring) Set(key, value string) error {
	return keyring.Set(service, key, value)
}

func (Keyring) Delete(key string) error {
	err := keyring.Delete(service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
