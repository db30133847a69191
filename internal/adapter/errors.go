package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes by
// mapHTTPError. Matched with errors.Is by the service layer.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrServerFailure = errors.New("server failure")
)
