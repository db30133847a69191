package service

import "errors"

var (
	// ErrAuth covers credential rejection and network failures during
	// login or registration. A prior session is never touched by it.
	ErrAuth = errors.New("authentication failed")

	// ErrConfig covers invalid initialization parameters, e.g. a
	// non-positive session length.
	ErrConfig = errors.New("invalid configuration")

	// ErrNoSession is returned by record operations when no
	// authenticated session is held.
	ErrNoSession = errors.New("no active session")
)
