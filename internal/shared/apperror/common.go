package apperror

import (
	"fmt"
	"net/http"
	"reflect"
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

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}

// LengthField reports a min/max violation. Strings, slices and maps are
// measured in length, everything else by value.
func LengthField(field, tag, param string, kind reflect.Kind) *AppError {
	bound := "at least"
	if tag == "max" {
		bound = "at most"
	}

	var msg string
	switch kind {
	case reflect.String:
		msg = fmt.Sprintf("%s must be %s %s characters", field, bound, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		msg = fmt.Sprintf("%s must contain %s %s items", field, bound, param)
	default:
		msg = fmt.Sprintf("%s must be %s %s", field, bound, param)
	}
	return New(CodeValidation, msg, http.StatusBadRequest)
}
