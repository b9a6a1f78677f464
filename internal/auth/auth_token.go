package auth

import (
	"errors"
	"fmt"
	"time"

	autherrors "github.com/allwinajith/elms/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTTL = 8 * time.Hour

// Claims carries the caller identity. Admin tokens are issued here and carry
// UserID; employee tokens come from the HR portal with the same secret and
// carry EmployeeID.
type Claims struct {
	UserID     string `json:"user_id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenManager) Issue(userID, employeeID, role string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.Role == "" {
		return nil, autherrors.ErrInvalidToken
	}
	if claims.UserID == "" && claims.EmployeeID == "" {
		return nil, autherrors.ErrInvalidToken
	}

	return claims, nil
}
