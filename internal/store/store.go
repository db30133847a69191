package store

import (
	"fmt"

	"github.com/jmontesdeoca/passvault/internal/config"
	"github.com/jmontesdeoca/passvault/internal/logger"
)

// NewCredentialCache constructs the credential cache selected by the
// storage configuration.
func NewCredentialCache(cfg config.Storage, log *logger.Logger) (CredentialCache, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return NewSQLiteCache(cfg.DSN, log)
	case config.BackendKeyring:
		return NewKeyringCache(cfg.KeyringService), nil
	case config.BackendMemory:
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
