package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dentismart/internal/auth"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
)

const (
	ContextProfileID = "profileID"
	ContextCabinetID = "cabinetID"
	ContextRole      = "profileRole"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return authenticate(tokens, true)
}

// OptionalAuth resolves the session when a bearer token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func OptionalAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return authenticate(tokens, false)
}

func authenticate(tokens *auth.TokenIssuer, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				abort(c, "missing_authorization_header")
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, "invalid_authorization_header")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abort(c, "invalid_token")
			return
		}

		c.Set(ContextProfileID, claims.Subject)
		c.Set(ContextCabinetID, claims.CabinetID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

func abort(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Non authentifié")
	c.Abort()
}

// Session returns the authenticated profile and cabinet, if any.
func Session(c *gin.Context) (profileID, cabinetID string, ok bool) {
	profileID = c.GetString(ContextProfileID)
	cabinetID = c.GetString(ContextCabinetID)
	return profileID, cabinetID, profileID != "" && cabinetID != ""
}
