package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing API address or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid credential-cache settings
	// (for example, an unknown backend or a missing SQLite path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing device secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, a non-positive tick interval).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
