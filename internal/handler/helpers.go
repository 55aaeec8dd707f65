package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/todolist/internal/middleware"
	appErr "github.com/xxxsen/todolist/internal/pkg/errors"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(string)
	return userID
}

// handleError maps the error taxonomy onto the exact statuses and bodies of
// the public API. InvalidCredentials deliberately maps to 400, not 401,
// matching the upstream behaviour.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("user_id", getUserID(c)),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, appErr.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, appErr.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, appErr.ErrNotOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found or unauthorized"})
	case errors.Is(err, appErr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case errors.Is(err, appErr.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, appErr.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	case errors.Is(err, appErr.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, appErr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
