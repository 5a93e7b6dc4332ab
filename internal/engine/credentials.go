package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/zalando/go-keyring"
)

// CredentialStore holds passwords for remote import sources.
type CredentialStore interface {
	Password(user string) (string, error)
	SetPassword(user, password string) error
}

// KeyringCredentials stores passwords in the OS keyring under Service.
type KeyringCredentials struct {
	Service string
}

// NewKeyringCredentials returns a store scoped to the application service name.
func NewKeyringCredentials() *KeyringCredentials {
	return &KeyringCredentials{Service: config.KeyringService}
}

// Password returns the stored password for user, or "" if none is stored.
func (k *KeyringCredentials) Password(user string) (string, error) {
	if user == "" {
		return "", nil
	}
	p, err := keyring.Get(k.Service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompKeyring,
			config.LogKeyUser, user)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return p, nil
}

// SetPassword stores password for user.
func (k *KeyringCredentials) SetPassword(user, password string) error {
	if err := keyring.Set(k.Service, user, password); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return nil
}
