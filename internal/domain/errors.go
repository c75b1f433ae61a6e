package domain

import (
	"errors"
	"fmt"
)

// ErrStorageCorrupt документ хранилища существует, но не парсится.
// Фатально на старте - молча выбрасывать данные пользователей нельзя.
var ErrStorageCorrupt = errors.New("storage document is corrupt")

// APIErrorKind закрытое множество видов сбоев удалённых вызовов.
// Адаптеры внешних API обязаны сводить любой сбой к одному из этих видов.
type APIErrorKind string

const (
	APIErrorConnection     APIErrorKind = "connection"
	APIErrorTimeout        APIErrorKind = "timeout"
	APIErrorAuthentication APIErrorKind = "authentication"
	APIErrorPermission     APIErrorKind = "permission"
	APIErrorBadRequest     APIErrorKind = "bad_request"
	APIErrorNotFound       APIErrorKind = "not_found"
	APIErrorConflict       APIErrorKind = "conflict"
	APIErrorRateLimit      APIErrorKind = "rate_limit"
	APIErrorUnprocessable  APIErrorKind = "unprocessable"
	APIErrorInternal       APIErrorKind = "internal"
	APIErrorUnknown        APIErrorKind = "unknown"
)

// APIError типизированный сбой удалённого вызова
type APIError struct {
	Kind       APIErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%s): %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("api error (%s)", e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorCategory категория ошибки, видимая пользователю.
// Значение совпадает с ключом локализованного сообщения.
type ErrorCategory string

const (
	ErrorCategoryNetwork ErrorCategory = "network_error"
	ErrorCategoryRequest ErrorCategory = "request_error"
	ErrorCategoryLimit   ErrorCategory = "limit_error"
	ErrorCategoryClient  ErrorCategory = "client_error"
	ErrorCategoryAuth    ErrorCategory = "auth_error"
	ErrorCategoryServer  ErrorCategory = "server_error"
	ErrorCategoryGeneric ErrorCategory = "error"
)

// MessageKey ключ локализованного сообщения для категории
func (c ErrorCategory) MessageKey() string {
	return string(c)
}
