package repository

import "errors"

var (
	// ErrNotFound indicates the session has no stored result.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidRecord indicates a record without a session ID.
	ErrInvalidRecord = errors.New("invalid record: missing session id")
)
