// Package ffi owns the handles of the native wallet core. Each wrapper holds
// exactly one handle and releases it exactly once.
//
// Wrappers must not be copied. Close is idempotent; any other method called
// after Close panics. A wrapper that becomes unreachable without Close is
// released by a finalizer, which logs a warning.
package ffi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMnemonic is returned when the wallet core rejects a mnemonic.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	// ErrInvalidEntropy is returned when the wallet core rejects entropy.
	ErrInvalidEntropy = errors.New("invalid entropy")
)

// DecodeError reports a foreign string that is not valid UTF-8.
type DecodeError struct {
	// Offset is the index of the first invalid byte.
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}
