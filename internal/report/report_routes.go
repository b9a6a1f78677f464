package report

import (
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	r.GET("/admin/leaves", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionReadAll), handler.ListForAdmin)
	r.GET("/admin/reports/leaves", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, rbac.ActionRead), handler.GetLeaveReports)
}
