package model

import "errors"

var (
	// ErrMissingSessionID indicates a submission without a session identifier.
	ErrMissingSessionID = errors.New("missing session id")

	// ErrMissingArchetype indicates a submission without a classification.
	ErrMissingArchetype = errors.New("missing archetype")
)
