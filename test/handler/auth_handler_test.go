package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/todolist/internal/pkg/jwt"
	"github.com/xxxsen/todolist/internal/repo"
)

func TestRegisterAndLogin(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"username": "a",
		"email":    "a@x.com",
		"password": "p1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.JSONEq(t, `{"message":"User registered successfully"}`, resp.Body.String())

	resp = doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "p1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)

	// token subject must be the registered user's id
	claims, err := jwt.ParseToken(result.Token, testJWTSecret)
	require.NoError(t, err)
	user, err := repo.NewUserRepo(db).GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	body := map[string]string{"username": "a", "email": "dup@x.com", "password": "p1"}
	resp := doJSON(t, router, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/register", "", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPost, "/register", "", map[string]string{
		"username": "a",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.JSONEq(t, `{"error":"Invalid request"}`, resp.Body.String())
}

func TestLoginUnknownUser(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "nobody@x.com",
		"password": "p1",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.JSONEq(t, `{"error":"User not found"}`, resp.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	registerAndLogin(t, router, "a", "a@x.com", "p1")

	resp := doJSON(t, router, http.MethodPost, "/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "wrong",
	})
	// upstream maps a credential mismatch to 400, not 401
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, resp.Body.String())
}

func TestProfileGuard(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodGet, "/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.JSONEq(t, `{"error":"Unauthorized"}`, resp.Body.String())

	resp = doJSON(t, router, http.MethodGet, "/profile", "garbage", nil)
	require.Equal(t, http.StatusForbidden, resp.Code)
	require.JSONEq(t, `{"error":"Invalid token"}`, resp.Body.String())

	token := registerAndLogin(t, router, "a", "a@x.com", "p1")
	resp = doJSON(t, router, http.MethodGet, "/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"message":"Protected route accessed successfully"}`, resp.Body.String())
}

func TestExpiredTokenRejected(t *testing.T) {
	router, db, cleanup := setupRouter(t)
	defer cleanup()

	registerAndLogin(t, router, "a", "a@x.com", "p1")
	user, err := repo.NewUserRepo(db).GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	expired, err := jwt.GenerateToken(user.ID, testJWTSecret, -time.Minute)
	require.NoError(t, err)

	resp := doJSON(t, router, http.MethodGet, "/profile", expired, nil)
	require.Equal(t, http.StatusForbidden, resp.Code)
	require.JSONEq(t, `{"error":"Invalid token"}`, resp.Body.String())
}
