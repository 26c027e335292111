// Package simerr defines the error kinds shared by the dice, game, and
// analysis packages.
//
// Callers test for a kind with errors.Is; the concrete error carries the
// offending value as wrapped context.
package simerr

import "errors"

var (
	// ErrInvalidArgument is returned for malformed input: duplicate faces,
	// negative or non-finite weights, negative roll counts, unknown forms.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a referenced face does not exist on a die.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation needs state that has not
	// been established yet, such as reading results before any play.
	ErrInvalidState = errors.New("invalid state")
)
