package middleware

import (
	"strings"

	"github.com/allwinajith/elms/internal/auth"
	autherrors "github.com/allwinajith/elms/internal/auth/errors"
	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/contextutil"
	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenParser is satisfied by *auth.TokenManager.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWithError(c, autherrors.ErrTokenNotFound)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("role", claims.Role)

		ctx := contextutil.WithIdentity(c.Request.Context(), contextutil.Identity{
			UserID:     claims.UserID,
			EmployeeID: claims.EmployeeID,
			Role:       claims.Role,
		})
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", claims.UserID),
			zap.String("employee_id", claims.EmployeeID),
			zap.String("role", claims.Role),
		)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
