package reporterrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Invalid status filter. Use pending, approved, or rejected.",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID  = apperror.InvalidField("Employee Id")
	ErrInvalidLeaveTypeID = apperror.InvalidField("Leave Type Id")
	ErrInvalidYear        = apperror.InvalidField("Year")
	ErrInvalidFormat      = apperror.New(
		apperror.CodeValidation,
		"Format must be json or xlsx",
		http.StatusBadRequest,
	)
)
