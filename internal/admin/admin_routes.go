package admin

import (
	"time"

	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts login on public and the account endpoints on
// protected; both groups are expected to share the same prefix.
func RegisterRoutes(
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	public.POST("/login", middleware.RateLimitByIP(rate.Every(12*time.Second), 5), handler.Login)

	protected.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAdmin, rbac.ActionRead), handler.List)
	protected.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceAdmin, rbac.ActionCreate), handler.Create)
	protected.PUT("/changePassword", middleware.RBACAuthorize(rbacService, rbac.ResourceAdmin, rbac.ActionUpdate), handler.ChangePassword)
}
