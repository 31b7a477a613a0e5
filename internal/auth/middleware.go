package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "quickdesk-backend/internal/errors"
	"quickdesk-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	issuer *TokenIssuer
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(issuer *TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth validates the session token and stores the caller's Identity
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		identity, err := m.issuer.Validate(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("rejected session token")
			abortUnauthorized(c, apperrors.ErrInvalidToken.Error())
			return
		}

		SetIdentity(c, *identity)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), identity.Email))
		c.Next()
	}
}

// VerifyCronSecret checks a bearer value against the configured cron secret.
// An unset secret rejects every caller.
func VerifyCronSecret(secret, authHeader string) error {
	if authHeader == "" {
		return apperrors.ErrMissingCronSecret
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if secret == "" || token == authHeader {
		return apperrors.ErrInvalidCronSecret
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		return apperrors.ErrInvalidCronSecret
	}
	return nil
}

// RequireCronSecret guards scheduled-job endpoints with a shared bearer secret
func RequireCronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := VerifyCronSecret(secret, c.GetHeader("Authorization")); err != nil {
			logger.WithContext(c.Request.Context()).Warn("rejected cron request")
			abortUnauthorized(c, err.Error())
			return
		}
		c.Next()
	}
}
