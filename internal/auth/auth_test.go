package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "quickdesk-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer("test-signing-key", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestTokenIssuer(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenIssuer("", time.Hour)
		assert.EqualError(t, err, "JWT secret is required")
	})

	t.Run("issue and validate", func(t *testing.T) {
		issuer := newTestIssuer(t)
		userID := uuid.New()

		token, err := issuer.Issue(userID, "jo@acme.com")
		require.NoError(t, err)

		identity, err := issuer.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, "jo@acme.com", identity.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := newTestIssuer(t)
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.Issue(uuid.New(), "jo@acme.com")
		require.NoError(t, err)

		issuer.now = time.Now
		_, err = issuer.Validate(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newTestIssuer(t).Issue(uuid.New(), "jo@acme.com")
		require.NoError(t, err)

		other, err := NewTokenIssuer("another-key", time.Hour)
		require.NoError(t, err)
		_, err = other.Validate(token)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New().String()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newTestIssuer(t).Validate(signed)
		assert.Error(t, err)
	})
}

func setupAuthRouter(issuer *TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(issuer).RequireAuth(), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID.String(), "email": identity.Email})
	})
	router.POST("/cron", RequireCronSecret("cron-secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	issuer := newTestIssuer(t)
	router := setupAuthRouter(issuer)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Authorization header is required", body["error"])
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrInvalidToken.Error())
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		userID := uuid.New()
		token, err := issuer.Issue(userID, "jo@acme.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "jo@acme.com", body["email"])
	})
}

func TestRequireCronSecret(t *testing.T) {
	router := setupAuthRouter(newTestIssuer(t))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic cron-secret", status: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer cron-secret", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/cron", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestVerifyCronSecret_UnsetSecretRejects(t *testing.T) {
	err := VerifyCronSecret("", "Bearer ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCronSecret)

	err = VerifyCronSecret("s3cret", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingCronSecret)
}
