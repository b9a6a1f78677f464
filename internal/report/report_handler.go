package report

import (
	"fmt"
	"net/http"
	"time"

	reporterrors "github.com/allwinajith/elms/internal/report/errors"
	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
	now     func() time.Time
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l, now: time.Now}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetLeaveReports answers JSON by default and a workbook for ?format=xlsx.
func (h *Handler) GetLeaveReports(c *gin.Context) {
	var f ReportFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		h.writeServiceError(c, reporterrors.ErrInvalidYear)
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "xlsx" {
		h.writeServiceError(c, reporterrors.ErrInvalidFormat)
		return
	}

	rows, err := h.service.FetchLeaveReports(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if format == "json" {
		response.Success(c, http.StatusOK, rows, nil)
		return
	}

	filename := fmt.Sprintf("leave-report-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)
	if err := WriteXLSX(c.Writer, rows); err != nil {
		h.logger.Error("xlsx export failed", zap.Error(err))
		c.Abort()
	}
}

// ListForAdmin returns every request unless page or page_size is given.
func (h *Handler) ListForAdmin(c *gin.Context) {
	rows, err := h.service.ListForAdmin(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.PaginateIfRequested(c, rows)
	response.Success(c, http.StatusOK, page, &meta)
}
