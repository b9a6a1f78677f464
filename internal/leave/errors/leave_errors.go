package leaveerrors

import (
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeValidation,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrReasonRequired    = apperror.RequiredField("Reason")
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"Invalid date range",
		http.StatusBadRequest,
	)
	ErrQuotaExceeded = apperror.New(
		apperror.CodeQuotaExceeded,
		"Leave quota exceeded",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"You already have a leave request overlapping these dates",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only cancel your own leave requests",
		http.StatusForbidden,
	)
	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be cancelled",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been processed",
		http.StatusBadRequest,
	)
	ErrInvalidDecisionStatus = apperror.New(
		apperror.CodeValidation,
		"Status must be 'approved' or 'rejected'",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidation,
		"Status must be one of pending, approved, rejected",
		http.StatusBadRequest,
	)
	ErrCancelFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to cancel leave request",
		http.StatusInternalServerError,
	)
)
