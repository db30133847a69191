package store

import (
	"errors"
	"fmt"
)

// ErrStorage is the class error for all credential-cache failures. Every
// specific error below wraps it.
var ErrStorage = errors.New("credential cache failure")

var (
	// ErrFieldNotFound indicates a requested field, flag or saved password
	// that is not present in the cache.
	ErrFieldNotFound = fmt.Errorf("%w: field not found", ErrStorage)

	// ErrUnknownBackend indicates an unrecognised storage backend name in
	// the configuration.
	ErrUnknownBackend = fmt.Errorf("%w: unknown backend", ErrStorage)
)
