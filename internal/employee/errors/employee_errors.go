package employeeerrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
