package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/todolist/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Todos     *TodoHandler
	JWTSecret []byte
}

// RegisterRoutes wires the public API. The public/protected split mirrors
// the upstream service exactly: single-item reads and deletes take no
// authentication, listing/creating/updating do.
func RegisterRoutes(router *gin.Engine, deps RouterDeps) {
	router.POST("/register", deps.Auth.Register)
	router.POST("/login", deps.Auth.Login)
	router.GET("/todo/:id", deps.Todos.Get)
	router.DELETE("/todo/:id", deps.Todos.Delete)

	authGroup := router.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.GET("/profile", deps.Auth.Profile)
	authGroup.GET("/todos", deps.Todos.List)
	authGroup.POST("/todo", deps.Todos.Create)
	authGroup.PUT("/todo/:id", deps.Todos.Update)
}
