package core

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports component or element access past the end of
	// a fixed-size value.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrIllegalParameters reports structurally invalid input, such as a flat
	// slice of the wrong length or mismatched control point and weight counts.
	// Numerically degenerate input is not an error; those cases produce the
	// documented sentinel values instead.
	ErrIllegalParameters = errors.New("illegal parameters")
	ErrUnknown           = errors.New("unknown")
)

// IndexError wraps ErrIndexOutOfRange with the offending index and the size
// of the value it was asked of.
func IndexError(index, size int) error {
	return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, size)
}

// ParameterError wraps ErrIllegalParameters with a description of the
// structural mismatch.
func ParameterError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrIllegalParameters}, args...)...)
}
