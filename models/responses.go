package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// APIEnvelope is the generic response wrapper used by the remote vault API.
// Data is left raw so each adapter call can decode it into its own type.
type APIEnvelope struct {
	IsSuccess  bool            `json:"is_success"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// LoginResult is the payload returned by the auth endpoint on success.
type LoginResult struct {
	UserID        string
	Role          string
	SQLToken      string
	APIToken      string
	ExpireMinutes int
}

// loginResultWire mirrors the server JSON. ExpireMin arrives as a string
// (legacy server format) and is converted during unmarshalling.
type loginResultWire struct {
	UserID    string `json:"user_Id"`
	Role      string `json:"role"`
	SQLToken  string `json:"sqlToken"`
	APIToken  string `json:"apiToken"`
	ExpireMin string `json:"expireMin"`
}

// UnmarshalJSON decodes the wire form of a login payload, converting the
// string-typed expireMin field to an integer minute count.
func (l *LoginResult) UnmarshalJSON(data []byte) error {
	var w loginResultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(w.ExpireMin))
	if err != nil {
		return fmt.Errorf("parse expireMin %q: %w", w.ExpireMin, err)
	}

	*l = LoginResult{
		UserID:        w.UserID,
		Role:          w.Role,
		SQLToken:      w.SQLToken,
		APIToken:      w.APIToken,
		ExpireMinutes: minutes,
	}
	return nil
}

// IVResult is the payload returned by the IV-issuing endpoints. The IV is
// opaque Base64 whose encoding is fixed by the server, not by this client.
type IVResult struct {
	IV string `json:"iv"`
}
