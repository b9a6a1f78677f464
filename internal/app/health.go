package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/allwinajith/elms/internal/shared/apperror"
	"github.com/allwinajith/elms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var errUnhealthy = apperror.New(
	apperror.CodeServiceUnavailable,
	"Service unavailable",
	http.StatusServiceUnavailable,
)

// healthHandler pings postgres and, when configured, redis.
func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := gin.H{"database": "ok"}
		healthy := true

		if err := db.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if rdb != nil {
			checks["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			}
		}

		if !healthy {
			response.Error(c, errUnhealthy.HTTPStatus, errUnhealthy.Code, errUnhealthy.Message, checks)
			return
		}
		response.Success(c, http.StatusOK, checks, nil)
	}
}
