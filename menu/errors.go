package menu

import "errors"

// Mutation failures. Every rename and relabel validates first and applies
// only when the whole change is valid, so a returned error means the menu
// is exactly as it was before the call.
var (
	// ErrLabelNotFound reports a rename whose source label is not present.
	ErrLabelNotFound = errors.New("label not found")

	// ErrCardinalityMismatch reports a bulk rename whose entry count does
	// not match the set being renamed.
	ErrCardinalityMismatch = errors.New("rename count does not match option count")

	// ErrDuplicateLabel reports a rename that would give two entries the
	// same label.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrIndexOutOfRange reports a positional rename outside the current
	// option list.
	ErrIndexOutOfRange = errors.New("option index out of range")
)
