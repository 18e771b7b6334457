package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// authMiddleware verifies an HS256 bearer token signed with the shared
// secret and stashes the subject claim for the resolvers behind it.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	if m.JwtSecret == "" {
		returnErrorJsonCode(fmt.Errorf("authentication is not configured"), c, 503, "internal")
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401, "unauthorized")
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, 401, "unauthorized")
		return
	}
	if !token.Valid {
		returnErrorJsonCode(fmt.Errorf("invalid token"), c, 401, "unauthorized")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("unexpected token claims"), c, 401, "unauthorized")
		return
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		returnErrorJsonCode(fmt.Errorf("token is missing subject"), c, 401, "unauthorized")
		return
	}

	c.Set("userAccountID", subject)
	c.Next()
}
