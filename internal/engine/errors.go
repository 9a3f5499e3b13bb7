package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrEmptyMark indicates a mark operation was given an empty tag.
	ErrEmptyMark = errors.New("engine: empty mark")

	// ErrEmptyBlockType indicates a block operation was given an empty type.
	ErrEmptyBlockType = errors.New("engine: empty block type")
)
