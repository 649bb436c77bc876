package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiprate/shiprate-server/internal/service"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := service.NewAuthService(nil, testSecret, time.Hour)
	r := gin.New()
	mw := OptionalAuth(auth)
	if required {
		mw = RequireAuth(auth)
	}
	r.GET("/probe", mw, func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func doProbe(r *gin.Engine, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(true)

	t.Run("missing token", func(t *testing.T) {
		w := doProbe(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doProbe(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doProbe(r, "Bearer "+signToken(t, "other-secret", "u1", time.Hour))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		w := doProbe(r, "Bearer "+signToken(t, testSecret, "u1", -time.Minute))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := doProbe(r, "Bearer "+signToken(t, testSecret, "u1", time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", w.Body.String())
	})
}

func TestOptionalAuth(t *testing.T) {
	r := newAuthRouter(false)

	t.Run("anonymous passes through", func(t *testing.T) {
		w := doProbe(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		w := doProbe(r, "Bearer garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("valid token resolves requester", func(t *testing.T) {
		w := doProbe(r, "Bearer "+signToken(t, testSecret, "u7", time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u7", w.Body.String())
	})
}
