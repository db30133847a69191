// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package store implements the credential cache: the durable store for the
// persisted session, the saved-password ciphertext and the opt-in flags.
//
// Three backends are provided — SQLite (default), the OS keyring, and an
// in-memory store for tests — all behind the [CredentialCache] contract.
// Every backend failure is reported as [ErrStorage] so callers can apply
// the local-state-wins policy without knowing which backend is in use.
package store

import (
	"context"

	"github.com/jmontesdeoca/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cache_mock.go -package=mock

// Well-known field and flag names used by the session manager.
const (
	FieldUserID    = "user_id"
	FieldEmail     = "email"
	FieldRole      = "role"
	FieldSQLToken  = "sql_token"
	FieldAPIToken  = "api_token"
	FieldExpiresAt = "expires_at"

	FieldSavedPassword = "saved_password"

	FlagSavePasswordOnNextLogin = "save_password_on_next_login"
	FlagBiometricsEnabled       = "biometrics_enabled"
)

// CredentialCache is the persisted session and saved-password store. All
// operations are durable across process restart but may fail transiently
// with [ErrStorage].
type CredentialCache interface {
	// SetSession persists every field of the session.
	SetSession(ctx context.Context, session models.Session) error

	// GetSession reassembles the persisted session from its fields.
	// Returns [ErrFieldNotFound] if no session is stored.
	GetSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the persisted session fields. The stored email,
	// the saved password and the flags survive: they belong to the
	// biometric re-entry flow, which outlives any single session.
	ClearSession(ctx context.Context) error

	// SetField stores a single named value.
	SetField(ctx context.Context, name, value string) error

	// GetField returns a single named value, or [ErrFieldNotFound].
	GetField(ctx context.Context, name string) (string, error)

	// SetSavedPassword stores the device-encrypted login password.
	// At most one saved password exists per device.
	SetSavedPassword(ctx context.Context, ciphertext string) error

	// GetSavedPassword returns the stored ciphertext, or [ErrFieldNotFound].
	GetSavedPassword(ctx context.Context) (string, error)

	// ClearSavedPassword removes the stored ciphertext. Clearing an absent
	// value is not an error.
	ClearSavedPassword(ctx context.Context) error

	// SetFlag stores a named boolean.
	SetFlag(ctx context.Context, name string, value bool) error

	// GetFlag returns a named boolean; an absent flag reads as false.
	GetFlag(ctx context.Context, name string) (bool, error)
}
