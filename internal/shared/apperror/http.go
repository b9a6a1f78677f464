package apperror

import (
	"errors"
	"net/http"
	"os"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens any error into what the response envelope needs.
// Unknown errors become a generic 500; the raw error text is only
// attached outside production.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	httpErr := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
	if err != nil && os.Getenv("APP_ENV") != "production" {
		httpErr.Details = err.Error()
	}
	return httpErr
}
