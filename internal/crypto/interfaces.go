// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package crypto implements the symmetric encryption engine that protects
// vault records, plus the device cipher guarding the saved login password.
//
// The engine reproduces the legacy vault format byte-for-byte so that data
// encrypted on one device decrypts on another with only the password: the
// key is the password's UTF-8 bytes repeated and truncated to 32 bytes (a
// known KDF weakness kept for compatibility — there is no salt and no
// iteration count), the cipher is AES-256-CBC with PKCS#7 padding, and the
// IV is issued per user by the server, never generated here.
package crypto

import "github.com/jmontesdeoca/passvault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is the symmetric encryption engine for vault records. It is
// stateless and safe for concurrent use; all methods are pure functions of
// their inputs.
type Engine interface {
	// DeriveKey produces the fixed 32-byte vault key from a password by
	// repeating the password's UTF-8 bytes and truncating. Deterministic:
	// the same password always yields the same key. Returns
	// ErrEmptyPassword for an empty password.
	DeriveKey(password string) ([]byte, error)

	// Encrypt encrypts plaintext with AES-256-CBC under key and the
	// Base64-encoded IV and returns Base64 ciphertext. Deterministic for
	// identical inputs. Returns a crypto error if the key is not 32 bytes
	// or the IV does not decode to one cipher block.
	Encrypt(plaintext string, key []byte, ivB64 string) (string, error)

	// Decrypt is the inverse of Encrypt. Returns a crypto error on invalid
	// Base64, a truncated or non-block-aligned ciphertext, or padding that
	// fails validation (wrong key or IV).
	Decrypt(ciphertextB64 string, key []byte, ivB64 string) (string, error)

	// EncryptRecord derives the key from password and encrypts the three
	// data fields of the record independently with the same key and IV.
	// ID and OwnerID are preserved; the input record is not mutated.
	EncryptRecord(record models.SecretRecord, password, ivB64 string) (models.SecretRecord, error)

	// DecryptRecord is the inverse of EncryptRecord. The first field that
	// fails to decrypt aborts the operation; no partially decrypted record
	// is returned.
	DecryptRecord(record models.SecretRecord, password, ivB64 string) (models.SecretRecord, error)

	// EncryptBatch applies EncryptRecord to every element in order. The
	// operation is atomic: if any record fails, no results are returned.
	EncryptBatch(records []models.SecretRecord, password, ivB64 string) ([]models.SecretRecord, error)

	// DecryptBatch applies DecryptRecord to every element in order, with
	// the same all-or-nothing semantics as EncryptBatch.
	DecryptBatch(records []models.SecretRecord, password, ivB64 string) ([]models.SecretRecord, error)

	// IsEncrypted reports whether text looks like ciphertext produced by
	// this engine: non-empty and valid standard Base64. This is a
	// heuristic, not a guarantee — any well-formed Base64 plaintext (e.g.
	// "QUJD") is misclassified as encrypted. Callers key UI decisions on
	// this exact behavior, so it is preserved rather than fixed.
	IsEncrypted(text string) bool
}

// DeviceCipher encrypts the saved login password under a device-fixed key
// derived from the installation's device secret, independent of the vault
// password. Used for the biometric re-entry flow.
type DeviceCipher interface {
	// EncryptPassword seals the plaintext password and returns a Base64
	// blob (random nonce prepended to the ciphertext).
	EncryptPassword(plaintext string) (string, error)

	// DecryptPassword opens a blob produced by EncryptPassword.
	DecryptPassword(blobB64 string) (string, error)
}
