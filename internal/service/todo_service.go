package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/xxxsen/todolist/internal/model"
	appErr "github.com/xxxsen/todolist/internal/pkg/errors"
	"github.com/xxxsen/todolist/internal/pkg/timeutil"
	"github.com/xxxsen/todolist/internal/repo"
)

type TodoService struct {
	todos *repo.TodoRepo
}

func NewTodoService(todos *repo.TodoRepo) *TodoService {
	return &TodoService{todos: todos}
}

type TodoCreateInput struct {
	Description string
	Completed   bool
}

type TodoUpdateInput struct {
	Description string
	Completed   bool
}

func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	return s.todos.ListByOwner(ctx, userID)
}

// Get is not ownership scoped; any caller may fetch a todo by id.
func (s *TodoService) Get(ctx context.Context, todoID string) (*model.Todo, error) {
	return s.todos.GetByID(ctx, todoID)
}

// Create always takes the owner from the authenticated identity; nothing in
// the request body can set it.
func (s *TodoService) Create(ctx context.Context, userID string, in TodoCreateInput) (*model.Todo, error) {
	now := timeutil.NowUnix()
	todo := &model.Todo{
		ID:          uuid.NewString(),
		Description: in.Description,
		Completed:   in.Completed,
		UserID:      userID,
		Ctime:       now,
		Mtime:       now,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update is a full replacement of description and completed, applied as a
// single conditional write scoped to the owner. Returns the post-update
// record.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, in TodoUpdateInput) (*model.Todo, error) {
	err := s.todos.UpdateByOwner(ctx, userID, todoID, in.Description, in.Completed, timeutil.NowUnix())
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return nil, appErr.ErrNotOwner
		}
		return nil, err
	}
	return s.todos.GetByID(ctx, todoID)
}

// Delete is not ownership scoped; it removes by id alone.
func (s *TodoService) Delete(ctx context.Context, todoID string) error {
	return s.todos.DeleteByID(ctx, todoID)
}
