package cli

import (
	"errors"
	"strings"

	"github.com/julianstephens/nourish/internal/constants"
	apperrors "github.com/julianstephens/nourish/internal/errors"
	"github.com/julianstephens/nourish/internal/keyring"
	"github.com/julianstephens/nourish/internal/migration"
	"github.com/julianstephens/nourish/internal/storage"
	"github.com/julianstephens/nourish/internal/storage/postgres"
	"github.com/julianstephens/nourish/internal/storage/sqlite"
	"github.com/julianstephens/nourish/internal/utils"
)

// KeyringTarget selects the PostgreSQL connection string stored in the OS keyring.
const KeyringTarget = "keyring"

// Migrator is implemented by the SQL backends.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	Runner() *migration.Runner
}

// OpenStore picks a backend for target: "keyring", a PostgreSQL connection
// string, a .json file, or otherwise a SQLite database path.
func OpenStore(target string) (storage.Provider, error) {
	switch {
	case target == KeyringTarget:
		connStr, err := keyring.GetConnectionString()
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, apperrors.WithHint(err, "store one with 'nourish keyring set <connection-string>'")
		}
		if err != nil {
			return nil, err
		}
		// The keyring is an acceptable home for a password.
		return postgres.New(connStr), nil

	case postgres.IsConnString(target) || strings.Contains(target, "host="):
		if err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, apperrors.WithHint(err,
					"use 'nourish keyring set', $"+constants.EnvDBConnection+" or a .pgpass file instead")
			}
			return nil, err
		}
		return postgres.New(target), nil
	}

	path, err := utils.ExpandHome(target)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return storage.NewJSONStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// IsSQLite reports whether store is backed by a local SQLite file.
func IsSQLite(store storage.Provider) bool {
	_, ok := store.(*sqlite.Store)
	return ok
}
