package handler

import "errors"

var (
	// ErrNilResponse indicates an Action returned a nil Response.
	ErrNilResponse = errors.New("nil response")

	// ErrNilHandler indicates a nil value was passed where a Handler is
	// required.
	ErrNilHandler = errors.New("nil handler")
)
