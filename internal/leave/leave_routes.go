package leave

import (
	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	r.POST("/employee/leaves",
		middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionCreate),
		middleware.Idempotency(rdb),
		handler.Submit,
	)
	r.GET("/employee/leaves/", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionRead), handler.ListOwn)
	r.DELETE("/pendingrqst/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionCancel), handler.Cancel)
	r.PUT("/admin/leaves/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLeaveRequest, rbac.ActionDecide), handler.Decide)
}
