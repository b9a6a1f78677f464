package leavebalance

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
	r.GET("/employee/balances/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceBalance, rbac.ActionRead), handler.GetBalances)
	r.POST("/admin/balances/init", middleware.RBACAuthorize(rbacService, rbac.ResourceBalance, rbac.ActionInit), handler.InitBalances)
}
