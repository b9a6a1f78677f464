package leavetype

import (
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to be the authenticated /leave group.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	r.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveType, rbac.ActionRead), handler.GetAll)
	r.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveType, rbac.ActionRead), handler.GetByID)
	r.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveType, rbac.ActionCreate), handler.Create)
	r.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveType, rbac.ActionUpdate), handler.Update)
	r.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveType, rbac.ActionDelete), handler.Delete)
}
