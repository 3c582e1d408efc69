// Package apierr turns core errors into the code and message reported to
// ledger clients. The HTTP gateway and the chaincode contracts share it, so
// both boundaries report the same failure the same way.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
)

const (
	CodeInvalidOrder    = "INVALID_ORDER"
	CodeDecodeError     = "DECODE_ERROR"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInternal        = "INTERNAL"
)

// Problem is a failure as clients see it.
type Problem struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Code, p.Message)
}

// FromError classifies err. Errors outside the errs family are reported as
// INTERNAL without their text.
func FromError(err error) Problem {
	var (
		exists      *errs.ObjectAlreadyExistsError
		notFound    *errs.ObjectNotFoundError
		notModified *errs.ObjectNotModifiedError
		invalid     *errs.InvalidOrderError
		decode      *errs.DecodeError
	)

	switch {
	case errors.As(err, &exists):
		kind := kindOf(exists.ParamName)
		return Problem{
			Status:  http.StatusConflict,
			Code:    kind.Code() + "_ALREADY_EXISTS",
			Message: fmt.Sprintf("%s %v already exists", kind.Title(), exists.ID),
		}
	case errors.As(err, &notFound):
		kind := kindOf(notFound.ParamName)
		return Problem{
			Status:  http.StatusNotFound,
			Code:    kind.Code() + "_NOT_FOUND",
			Message: fmt.Sprintf("%s %v does not exist", kind.Title(), notFound.ID),
		}
	case errors.As(err, &notModified):
		kind := kindOf(notModified.ParamName)
		return Problem{
			Status:  http.StatusConflict,
			Code:    kind.Code() + "_NOT_UPDATED",
			Message: fmt.Sprintf("%s %v has not been updated", kind.Title(), notModified.ID),
		}
	case errors.As(err, &invalid):
		return Problem{Status: http.StatusUnprocessableEntity, Code: CodeInvalidOrder, Message: invalid.Reason}
	case errors.As(err, &decode):
		return Problem{Status: http.StatusInternalServerError, Code: CodeDecodeError, Message: decode.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return InvalidArgument(err.Error())
	default:
		return Problem{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal error"}
	}
}

// InvalidArgument reports a request the core never saw.
func InvalidArgument(message string) Problem {
	return Problem{Status: http.StatusBadRequest, Code: CodeInvalidArgument, Message: message}
}

// kindOf resolves the kind tag errors carry as their parameter name.
func kindOf(tag string) kernel.Kind {
	kind, err := kernel.ParseKind(tag)
	if err != nil {
		return kernel.KindUnknown
	}
	return kind
}
