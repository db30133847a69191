// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package config

// validate checks that the final merged [ClientConfig] satisfies all
// invariants before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendKeyring:
		if cfg.Storage.KeyringService == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.App.DeviceSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Session.TickInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
