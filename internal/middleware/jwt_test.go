package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/todolist/internal/pkg/jwt"
)

func newGuardedRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(secret))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserIDKey)})
	})
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router := newGuardedRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	router := newGuardedRouter([]byte("secret"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuthBadSignature(t *testing.T) {
	router := newGuardedRouter([]byte("secret"))

	token, err := jwt.GenerateToken("user-1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router := newGuardedRouter([]byte("secret"))

	token, err := jwt.GenerateToken("user-1", []byte("secret"), time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "user-1")
}
