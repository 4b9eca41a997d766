package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code int

const (
	CodeInternal Code = iota
	CodeNotFound
	CodeInvalidArgument
	CodeEmptyCart
	CodeProductMissing
)

// Error 帶錯誤碼的業務錯誤, handler 統一轉成HTTP status
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func InvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

func EmptyCart(message string) *Error {
	return &Error{Code: CodeEmptyCart, Message: message}
}

func ProductMissing(message string) *Error {
	return &Error{Code: CodeProductMissing, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// CodeOf 取出錯誤碼, 非業務錯誤一律視為 Internal
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf 回傳對外訊息, Internal 不洩漏內部細節
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return fallback
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidArgument, CodeEmptyCart:
		return http.StatusBadRequest
	case CodeProductMissing:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
