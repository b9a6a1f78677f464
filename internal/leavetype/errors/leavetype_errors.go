package leavetypeerrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNameExists = apperror.New(
		apperror.CodeConflict,
		"Leave type name already exists",
		http.StatusConflict,
	)
	ErrNameRequired = apperror.RequiredField("Name")
)
