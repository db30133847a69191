// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package adapter provides the transport-layer abstraction for talking to
// the remote vault API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/jmontesdeoca/passvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// vault API. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates a new account. The server validates that both
	// password fields match.
	Register(ctx context.Context, email, password, confirmPassword string) error

	// Login authenticates the user and returns the issued identity and
	// tokens together with the session expiry in minutes. On success the
	// API token is stored via SetToken.
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	// Logout forgets the bearer token. The server expires sessions by
	// TTL and exposes no revocation endpoint.
	Logout()

	// GetIV fetches the per-user IV bound to the given vault password.
	// The client never generates an IV locally.
	GetIV(ctx context.Context, owner models.CoreUserRequest, password string) (string, error)

	// RegisterCorePassword registers a new vault password with the server
	// and returns the freshly issued IV for it.
	RegisterCorePassword(ctx context.Context, owner models.CoreUserRequest, password string) (string, error)

	// GetRecords fetches all (encrypted) vault records for the owner.
	GetRecords(ctx context.Context, owner models.CoreUserRequest) ([]models.SecretRecord, error)

	// CreateRecord uploads a new encrypted record and returns the stored
	// representation.
	CreateRecord(ctx context.Context, record models.SecretRecord, owner models.CoreUserRequest) (models.SecretRecord, error)

	// UpdateRecord replaces an existing encrypted record.
	UpdateRecord(ctx context.Context, record models.SecretRecord, owner models.CoreUserRequest) (models.SecretRecord, error)

	// DeleteRecord removes a record by ID.
	DeleteRecord(ctx context.Context, recordID string, owner models.CoreUserRequest) error
}
