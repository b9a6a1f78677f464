package auth_test

import (
	"testing"
	"time"

	"github.com/allwinajith/elms/internal/auth"
	autherrors "github.com/allwinajith/elms/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	token, err := m.Issue("admin-1", "", "ADMIN")
	assert.NoError(t, err)

	claims, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Empty(t, claims.EmployeeID)
}

func TestTokenManager_Parse(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	sign := func(secret string, claims auth.Claims, method jwt.SigningMethod) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		assert.NoError(t, err)
		return s
	}

	t.Run("expired", func(t *testing.T) {
		token := sign("secret", auth.Claims{
			EmployeeID: "emp-1",
			Role:       "EMPLOYEE",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}, jwt.SigningMethodHS256)

		_, err := m.Parse(token)

		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := sign("other", auth.Claims{EmployeeID: "emp-1", Role: "EMPLOYEE"}, jwt.SigningMethodHS256)

		_, err := m.Parse(token)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("missing role", func(t *testing.T) {
		token := sign("secret", auth.Claims{EmployeeID: "emp-1"}, jwt.SigningMethodHS256)

		_, err := m.Parse(token)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		token := sign("secret", auth.Claims{Role: "EMPLOYEE"}, jwt.SigningMethodHS256)

		_, err := m.Parse(token)

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-jwt")

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
