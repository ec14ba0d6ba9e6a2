package errors

import "errors"

var (
	// ErrAssertionFailed is carried by the panic raised by the default
	// assertion handler.
	ErrAssertionFailed = errors.New("tbx: assertion failed")
)
