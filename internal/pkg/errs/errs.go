package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
)

// ObjectNotFoundError reports that the object identified by ParamName/ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%v", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that was supplied but violates a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IsValidation reports whether err (or anything joined into it) is a
// required-value or invalid-value error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) || errors.Is(err, ErrValueIsInvalid)
}

// IsNotFound reports whether err is an ObjectNotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// Nest moves the required and invalid errors in err under parent, so that
// "name" reported for the first item becomes "items[0].name". Other errors
// are wrapped with the parent as a prefix.
func Nest(parent string, err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *ValueIsRequiredError:
		nested := *e
		nested.ParamName = parent + "." + e.ParamName
		return &nested
	case *ValueIsInvalidError:
		nested := *e
		nested.ParamName = parent + "." + e.ParamName
		return &nested
	case interface{ Unwrap() []error }:
		inner := e.Unwrap()
		nested := make([]error, 0, len(inner))
		for _, err := range inner {
			nested = append(nested, Nest(parent, err))
		}
		return errors.Join(nested...)
	default:
		return fmt.Errorf("%s: %w", parent, err)
	}
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// sanitize keeps client-supplied values from breaking single-line log records.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
