package launch

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports input rejected before reaching the backend.
type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError reports an unknown record id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

// BackendError wraps a persistence failure.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsBackend(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
