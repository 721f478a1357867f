package domain

import "errors"

var (
	// ErrInvalidAnswer indicates a submitted value is outside the stage's
	// declared option set, or a required free-text field is empty.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrIncompleteContext indicates an attempt to synthesize a generation
	// request while required fields for the resolved goal are missing.
	ErrIncompleteContext = errors.New("incomplete context")
)
