package leavebalanceerrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"Year is invalid",
		http.StatusBadRequest,
	)
	ErrForbiddenBalance = apperror.New(
		apperror.CodeForbidden,
		"You can only view your own leave balances",
		http.StatusForbidden,
	)
)
