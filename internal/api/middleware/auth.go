// Package middleware guards the admin-only API routes. Token issuance
// belongs to the separate auth service; this package only verifies what it
// is handed.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"

	"github.com/paviotti-fleet/monitor/internal/api/respond"
)

const roleAdmin = "ADMIN"

// UserClaims are the JWT claims issued by the auth service.
type UserClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAdmin rejects requests without a valid bearer token carrying the
// ADMIN role.
func RequireAdmin(secret string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid token"))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*UserClaims)
		if !ok {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid token claims"))
			c.Abort()
			return
		}

		if claims.Role != roleAdmin {
			respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("admin role required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
