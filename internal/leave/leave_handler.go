package leave

import (
	"fmt"
	"net/http"

	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/contextutil"
	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
}

// employeeID is empty for tokens that do not belong to an employee.
func employeeID(c *gin.Context) string {
	return contextutil.GetIdentity(c.Request.Context()).EmployeeID
}

func (h *Handler) Submit(c *gin.Context) {
	empID := employeeID(c)
	if empID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), empID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Leave request submitted successfully", resp)
}

func (h *Handler) ListOwn(c *gin.Context) {
	empID := employeeID(c)
	if empID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.ListOwn(c.Request.Context(), empID, c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	empID := employeeID(c)
	if empID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.Param("id"), empID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Leave request cancelled successfully", nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	adminID := contextutil.GetIdentity(c.Request.Context()).UserID

	resp, err := h.service.Decide(c.Request.Context(), c.Param("id"), adminID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Leave has been %s", resp.Status), resp)
}
