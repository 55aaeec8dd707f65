package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xxxsen/todolist/internal/handler"
	"github.com/xxxsen/todolist/internal/middleware"
	"github.com/xxxsen/todolist/internal/repo"
	"github.com/xxxsen/todolist/internal/service"
	"github.com/xxxsen/todolist/test/testutil"
)

var testJWTSecret = []byte("test-secret")

func setupRouter(t *testing.T) (http.Handler, *repo.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(db)
	todoRepo := repo.NewTodoRepo(db)

	authService := service.NewAuthService(userRepo, testJWTSecret, time.Hour)
	todoService := service.NewTodoService(todoRepo)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.CORS(nil))
	handler.RegisterRoutes(router, handler.RouterDeps{
		Auth:      handler.NewAuthHandler(authService),
		Todos:     handler.NewTodoHandler(todoService),
		JWTSecret: testJWTSecret,
	})

	return router, db, cleanup
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerAndLogin(t *testing.T, router http.Handler, username, email, pass string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": pass,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": pass,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}
