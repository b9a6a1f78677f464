package adminerrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrUsernameRequired        = apperror.RequiredField("Username")
	ErrPasswordRequired        = apperror.RequiredField("Password")
	ErrCurrentPasswordRequired = apperror.RequiredField("Current Password")
	ErrNewPasswordRequired     = apperror.RequiredField("New Password")

	ErrUsernameExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)
	ErrIncorrectPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Current password is incorrect",
		http.StatusUnauthorized,
	)
	ErrPasswordUpdateFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to update password",
		http.StatusInternalServerError,
	)
)
