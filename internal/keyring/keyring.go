// Package keyring keeps secrets in the OS credential store.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/nourish/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Entry addresses one secret in the OS keyring.
type Entry struct {
	Service string
	User    string
}

// ConnectionString is the PostgreSQL connection string entry.
var ConnectionString = Entry{Service: constants.AppName, User: constants.DefaultKeyringUser}

func (e Entry) Get() (string, error) {
	v, err := keyring.Get(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func (e Entry) Set(value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", e.User)
	}
	if err := keyring.Set(e.Service, e.User, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", e.User, err)
	}
	return nil
}

func (e Entry) Delete() error {
	err := keyring.Delete(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s from keyring: %w", e.User, err)
	}
	return nil
}

func GetConnectionString() (string, error) { return ConnectionString.Get() }
func SetConnectionString(s string) error    { return ConnectionString.Set(s) }
func DeleteConnectionString() error         { return ConnectionString.Delete() }

// IsAvailable probes the keyring with a read. Not finding the probe key still
// counts as available.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
