// Package common contains shared constants and sentinel errors used across
// nxtcli components. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Flow-control errors (operation invalid in the current phase).
	ErrNotAllowed = errors.New("operation not allowed in current state")

	// ErrSuperseded reports that a flow instance was reset while a request
	// was in flight; the late result has been discarded.
	ErrSuperseded = errors.New("operation superseded")

	// Session lifecycle errors.
	ErrNoSession      = errors.New("no active session")
	ErrSessionInvalid = errors.New("session is no longer valid")
)
