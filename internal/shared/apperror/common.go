package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		CodeStoreUnavailable,
		"The service is temporarily unavailable, please try again later",
		http.StatusServiceUnavailable,
	)

	ErrAssetUnavailable = New(
		CodeAssetUnavailable,
		"Presentation asset could not be resolved",
		http.StatusServiceUnavailable,
	)
)

// RequiredField membuat ValidationError untuk field wajib yang kosong.
func RequiredField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is required", field),
		Field:      field,
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidField membuat ValidationError untuk field dengan nilai tidak valid.
func InvalidField(field string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    fmt.Sprintf("%s is invalid", field),
		Field:      field,
		HTTPStatus: http.StatusBadRequest,
	}
}
