package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/allwinajith/elms/internal/middleware"
	"github.com/allwinajith/elms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRBAC struct {
	allowed bool
	err     error
	got     rbac.EnforceRequest
}

func (s *stubRBAC) Enforce(req rbac.EnforceRequest) (bool, error) {
	s.got = req
	return s.allowed, s.err
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func TestRBACAuthorize(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		stub   *stubRBAC
		status int
	}{
		{"allowed", rbac.RoleAdmin, &stubRBAC{allowed: true}, http.StatusOK},
		{"denied", rbac.RoleEmployee, &stubRBAC{allowed: false}, http.StatusForbidden},
		{"no role", "", &stubRBAC{allowed: true}, http.StatusUnauthorized},
		{"enforcer error", rbac.RoleAdmin, &stubRBAC{err: errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/x", withRole(tc.role), middleware.RBACAuthorize(tc.stub, rbac.ResourceReport, rbac.ActionRead), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tc.status, w.Code)
			if tc.role != "" {
				assert.Equal(t, rbac.EnforceRequest{Role: tc.role, Resource: rbac.ResourceReport, Action: rbac.ActionRead}, tc.stub.got)
			}
		})
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := newEngine()
	r.POST("/login", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
