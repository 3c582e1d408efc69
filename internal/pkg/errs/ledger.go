package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrObjectNotModified   = errors.New("object not modified")
	ErrInvalidOrder        = errors.New("invalid order")
	ErrValueIsNotDecodable = errors.New("value is not decodable")
)

// ObjectAlreadyExistsError is returned when a create targets an occupied key.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ObjectNotModifiedError is returned when an update would leave the stored
// object exactly as it is.
type ObjectNotModifiedError struct {
	ParamName string
	ID        any
}

func NewObjectNotModifiedError(paramName string, id any) *ObjectNotModifiedError {
	return &ObjectNotModifiedError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *ObjectNotModifiedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrObjectNotModified, e.ID)
}

func (e *ObjectNotModifiedError) Unwrap() error {
	return ErrObjectNotModified
}

// InvalidOrderError carries the reason an order was refused by a lifecycle
// guard. The reason is the whole message so it reaches callers verbatim.
type InvalidOrderError struct {
	Reason string
}

func NewInvalidOrderError(reason string) *InvalidOrderError {
	return &InvalidOrderError{Reason: reason}
}

func NewInvalidOrderErrorf(format string, args ...any) *InvalidOrderError {
	return &InvalidOrderError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidOrderError) Error() string {
	return e.Reason
}

func (e *InvalidOrderError) Unwrap() error {
	return ErrInvalidOrder
}

// DecodeError is returned when stored bytes do not match the record shape
// expected under their key.
type DecodeError struct {
	Key   string
	Cause error
}

func NewDecodeError(key string, cause error) *DecodeError {
	return &DecodeError{
		Key:   key,
		Cause: cause,
	}
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsNotDecodable, sanitize(e.Key), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsNotDecodable, sanitize(e.Key))
}

func (e *DecodeError) Unwrap() error {
	return ErrValueIsNotDecodable
}
