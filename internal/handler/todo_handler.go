package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErr "github.com/xxxsen/todolist/internal/pkg/errors"
	"github.com/xxxsen/todolist/internal/service"
)

type TodoHandler struct {
	todos *service.TodoService
}

func NewTodoHandler(todos *service.TodoService) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// todoRequest is the typed boundary schema; owner is absent on purpose, the
// authenticated identity is the only source of ownership.
type todoRequest struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todos.List(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) Get(c *gin.Context) {
	todo, err := h.todos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Create(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, appErr.ErrInvalid)
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), getUserID(c), service.TodoCreateInput{
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (h *TodoHandler) Update(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, appErr.ErrInvalid)
		return
	}
	todo, err := h.todos.Update(c.Request.Context(), getUserID(c), c.Param("id"), service.TodoUpdateInput{
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
