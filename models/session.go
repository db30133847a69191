// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package models

import "time"

// Session represents one authenticated principal for the running process.
//
// A Session value is exclusively owned by the session manager while active,
// mirrored field-wise into the credential cache for persistence across
// process restarts, and cleared on logout or expiry.
type Session struct {
	// UserID is the server-assigned identifier of the authenticated user.
	UserID string `json:"user_id"`

	// Email is the login identity the session was established with.
	Email string `json:"email"`

	// Role is the authorization role returned by the server.
	Role string `json:"role"`

	// SQLToken is the opaque data-access token issued at login.
	SQLToken string `json:"sql_token"`

	// APIToken is the bearer token attached to authenticated API requests.
	APIToken string `json:"api_token"`

	// ExpiresAt is the absolute UTC instant beyond which the session is
	// invalid. Computed at login from the server-reported expiry minutes.
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAuthenticated reports whether the session holds tokens and has not yet
// passed its absolute expiry at the given instant.
func (s Session) IsAuthenticated(now time.Time) bool {
	return s.APIToken != "" && now.Before(s.ExpiresAt)
}

// Remaining returns the time left until expiry at the given instant,
// floored at zero.
func (s Session) Remaining(now time.Time) time.Duration {
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
