package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/dental-admin/internal/config"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

const ContextOperator = "operator"

// AuthMiddleware requires an operator token when a passcode hash is
// configured and lets every request through otherwise. Browsers cannot set
// headers on a websocket upgrade, so ?token= is accepted too.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AuthEnabled() {
			c.Set(ContextOperator, "operator")
			c.Next()
			return
		}

		tokenString := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httperr.Unauthorized(c, "invalid_authorization_header", "Please sign in again.")
				c.Abort()
				return
			}
			tokenString = parts[1]
		}
		if tokenString == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Please sign in.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Please sign in again.")
			c.Abort()
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Please sign in again.")
			c.Abort()
			return
		}

		c.Set(ContextOperator, sub)
		c.Next()
	}
}
