// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package service holds the client's business layer: the session
// lifecycle manager that owns the single authenticated session, and the
// record service that orchestrates encrypt-before-upload and
// decrypt-after-fetch for vault records.
package service

import (
	"context"
	"time"

	"github.com/jmontesdeoca/passvault/models"
)

// SessionManager owns the single active session for the running process.
// It drives the expiry countdown, fires the one-shot expiry notification,
// and orchestrates the save-password opt-in/opt-out flow.
//
// One instance per process. All session mutations (login, logout,
// countdown tick) are serialized internally.
type SessionManager interface {
	// Register creates a new account on the server. Rejections surface
	// as ErrAuth.
	Register(ctx context.Context, email, password, confirmPassword string) error

	// Login authenticates against the server and, on success, installs a
	// fresh session with the server-reported lifetime and starts the
	// countdown. A rejection surfaces as ErrAuth and leaves any prior
	// session untouched. If the save-password flag was set, the password
	// is device-encrypted and stored, then the flag is cleared; failures
	// there are logged and never fail the login itself.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// RestoreSession adopts the session persisted by a previous process,
	// provided it has not expired yet. Returns ErrAuth otherwise.
	RestoreSession(ctx context.Context) (models.Session, error)

	// InitializeSession arms the expiry countdown for the held session.
	// Returns ErrConfig if expireMinutes is not positive.
	InitializeSession(ctx context.Context, expireMinutes int) error

	// CurrentSession returns a copy of the held session, if any.
	CurrentSession() (models.Session, bool)

	// IsSessionExpired reports expiry without side effects. Detection is
	// separate from the logout action, which only the countdown drives.
	IsSessionExpired() bool

	// GetRemainingTime returns max(0, expiresAt - now).
	GetRemainingTime() time.Duration

	// UpdateSessionTime consumes one countdown tick. On reaching zero it
	// stops the driver, marks the session expired, fires the expiry
	// observers exactly once, and performs a full logout. Late ticks
	// after expiry or logout are no-ops.
	UpdateSessionTime()

	// OnSessionExpired registers an observer fired exactly once when the
	// countdown reaches zero.
	OnSessionExpired(fn func())

	// PerformFullLogout stops the countdown, clears the in-memory
	// session and asks the credential cache to clear its persisted copy.
	// Cache failures are logged and never block local clearing.
	PerformFullLogout(ctx context.Context, reason string)

	// SetSavePasswordOnNextLogin persists the opt-in flag. Toggling off
	// cascades: the stored password ciphertext and the flag are cleared
	// together, or the state is left unchanged on storage failure.
	SetSavePasswordOnNextLogin(ctx context.Context, flag bool) error

	// GetSavePasswordOnNextLogin reads the opt-in flag.
	GetSavePasswordOnNextLogin(ctx context.Context) (bool, error)

	// SetBiometricEnabled toggles biometric re-entry. Disabling it
	// cascades into the save-password-off cascade: a saved password
	// cannot outlive the biometric unlock guarding it. Unlike the
	// save-password toggle, disabling is not rolled back: if the final
	// flag write fails after the cascade, the saved password stays
	// cleared and the call errors with the biometrics flag unchanged.
	// The failure leans toward less retained secret material, never
	// toward a saved password without its biometric guard.
	SetBiometricEnabled(ctx context.Context, enabled bool) error

	// IsBiometricEnabled reads the biometric flag.
	IsBiometricEnabled(ctx context.Context) (bool, error)

	// GetSavedPassword decrypts and returns the saved login password for
	// the biometric re-entry flow.
	GetSavedPassword(ctx context.Context) (string, error)

	// HasSavedPassword reports whether a saved password ciphertext is
	// stored, without decrypting it.
	HasSavedPassword(ctx context.Context) bool
}

// RecordService orchestrates the vault-record flow: it fetches the
// per-user IV from the server, encrypts records before upload and
// decrypts them after fetch. Plaintext never leaves the process.
type RecordService interface {
	// RegisterVaultPassword registers a new vault password with the
	// server and returns the IV issued for it.
	RegisterVaultPassword(ctx context.Context, password string) (string, error)

	// GetAllRecords fetches and decrypts every record of the current
	// user. Any record failing to decrypt aborts the whole fetch.
	GetAllRecords(ctx context.Context, password string) ([]models.SecretRecord, error)

	// CreateRecord encrypts and uploads a new record, assigning a
	// client-side ID when the record has none. Returns the stored
	// record, decrypted.
	CreateRecord(ctx context.Context, record models.SecretRecord, password string) (models.SecretRecord, error)

	// UpdateRecord encrypts and uploads a changed record. Returns the
	// stored record, decrypted.
	UpdateRecord(ctx context.Context, record models.SecretRecord, password string) (models.SecretRecord, error)

	// DeleteRecord removes a record by ID.
	DeleteRecord(ctx context.Context, recordID string) error
}
