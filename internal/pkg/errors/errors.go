package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeOutOfRange        = "OUT_OF_RANGE"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientSpots = "INSUFFICIENT_SPOTS"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeDuplicateDispute  = "DUPLICATE_DISPUTE"
	CodeDuplicateEarning  = "DUPLICATE_EARNING"
	CodeAlreadyResolved   = "ALREADY_RESOLVED"
	CodePaymentProcessor  = "PAYMENT_PROCESSOR_ERROR"
	CodeDataIntegrity     = "DATA_INTEGRITY"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

type CustomError struct {
	HTTPCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

func (e CustomError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(httpCode int, code, msg string) error {
	return CustomError{HTTPCode: httpCode, Code: code, Message: msg}
}

func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, CodeBadRequest, msg)
}

func InvalidInput(msg string) error {
	return newError(http.StatusUnprocessableEntity, CodeInvalidInput, msg)
}

func OutOfRange(msg string) error {
	return newError(http.StatusUnprocessableEntity, CodeOutOfRange, msg)
}

func UnauthorizedError(msg string) error {
	return newError(http.StatusUnauthorized, CodeUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newError(http.StatusForbidden, CodeForbidden, msg)
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, CodeNotFound, msg)
}

func InsufficientSpots(msg string) error {
	return newError(http.StatusConflict, CodeInsufficientSpots, msg)
}

func InvalidTransition(msg string) error {
	return newError(http.StatusConflict, CodeInvalidTransition, msg)
}

func DuplicateDispute(msg string) error {
	return newError(http.StatusConflict, CodeDuplicateDispute, msg)
}

func DuplicateEarning(msg string) error {
	return newError(http.StatusConflict, CodeDuplicateEarning, msg)
}

func AlreadyResolved(msg string) error {
	return newError(http.StatusConflict, CodeAlreadyResolved, msg)
}

func PaymentProcessorError(msg string) error {
	return newError(http.StatusBadGateway, CodePaymentProcessor, msg)
}

// DataIntegrity marks an invariant violation in persisted state. It is never retried.
func DataIntegrity(msg string) error {
	return newError(http.StatusInternalServerError, CodeDataIntegrity, msg)
}

func InternalServerError(msg string) error {
	return newError(http.StatusInternalServerError, CodeInternal, msg)
}

// Is reports whether err carries the given taxonomy code.
func Is(err error, code string) bool {
	var ce CustomError
	if goerrors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// As extracts the CustomError from err, falling back to an internal error.
func As(err error) CustomError {
	var ce CustomError
	if goerrors.As(err, &ce) {
		return ce
	}
	return CustomError{HTTPCode: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
}
