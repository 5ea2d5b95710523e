package binder

import (
	"errors"
	"fmt"
)

// ErrMissingParam indicates a required parameter was absent from its
// namespace and no default was supplied.
var ErrMissingParam = errors.New("missing parameter")

// missingParamError identifies the namespace and name of an absent
// required parameter.
type missingParamError struct {
	namespace string
	name      string
}

func (e missingParamError) Error() string {
	return fmt.Sprintf("missing %s parameter: %s", e.namespace, e.name)
}

func (e missingParamError) Unwrap() error {
	return ErrMissingParam
}
