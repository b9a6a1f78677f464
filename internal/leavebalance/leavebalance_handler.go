package leavebalance

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	leavebalanceerrors "github.com/allwinajith/elms/internal/leavebalance/errors"
	"github.com/allwinajith/elms/internal/rbac"
	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/contextutil"
	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
	now     func() time.Time
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leavebalance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.handler")
	}
	return &Handler{service: service, logger: l, now: time.Now}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave balance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// yearParam reads ?year=, defaulting to the current calendar year.
func (h *Handler) yearParam(c *gin.Context) (int, error) {
	raw := c.Query("year")
	if raw == "" {
		return h.now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, leavebalanceerrors.ErrInvalidYear
	}
	return year, nil
}

func (h *Handler) GetBalances(c *gin.Context) {
	ctx := c.Request.Context()
	employeeID := c.Param("id")

	id := contextutil.GetIdentity(ctx)
	if id.Role != rbac.RoleAdmin && id.EmployeeID != employeeID {
		h.writeServiceError(c, leavebalanceerrors.ErrForbiddenBalance)
		return
	}

	year, err := h.yearParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetBalances(ctx, employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) InitBalances(c *gin.Context) {
	year, err := h.yearParam(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.InitializeYear(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Balances initialized for year %d", year), resp)
}
