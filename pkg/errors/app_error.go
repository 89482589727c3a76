package errors

import "fmt"

// AppError carries a stable machine code plus the HTTP status the handler
// should answer with.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrBadRequest = func(msg string) *AppError {
		return &AppError{Code: "bad_request", Status: 400, Message: msg}
	}
	ErrTooManyParts = func(count, limit int) *AppError {
		return &AppError{Code: "too_many_parts", Status: 400, Message: fmt.Sprintf("file would need %d parts, limit is %d", count, limit)}
	}
	ErrMissingConfig = func(msg string) *AppError {
		return &AppError{Code: "missing_config", Status: 400, Message: msg}
	}
	ErrInvalidAddress = func(which string, err error) *AppError {
		return &AppError{Code: "invalid_address", Status: 400, Message: "invalid " + which + " address", Err: err}
	}
	ErrStorage = func(msg string, err error) *AppError {
		return &AppError{Code: "storage_error", Status: 500, Message: msg, Err: err}
	}
	ErrEmailProvider = func(msg string) *AppError {
		return &AppError{Code: "email_provider_error", Status: 502, Message: msg}
	}
	ErrEmailTransport = func(err error) *AppError {
		return &AppError{Code: "email_transport_error", Status: 500, Message: "email dispatch failed", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: "internal_error", Status: 500, Message: "internal error", Err: err}
	}
)
