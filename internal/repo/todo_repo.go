package repo

import (
	"context"

	"github.com/didi/gendry/builder"

	"github.com/xxxsen/todolist/internal/model"
	"github.com/xxxsen/todolist/internal/pkg/dbutil"
	appErr "github.com/xxxsen/todolist/internal/pkg/errors"
)

var todoColumns = []string{"id", "description", "completed", "user_id", "ctime", "mtime"}

type TodoRepo struct {
	db *DB
}

func NewTodoRepo(db *DB) *TodoRepo {
	return &TodoRepo{db: db}
}

func (r *TodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	data := map[string]interface{}{
		"id":          todo.ID,
		"description": todo.Description,
		"completed":   todo.Completed,
		"user_id":     todo.UserID,
		"ctime":       todo.Ctime,
		"mtime":       todo.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("todos", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(r.db.Driver(), sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// GetByID fetches by id alone; single-item reads are not ownership scoped.
func (r *TodoRepo) GetByID(ctx context.Context, todoID string) (*model.Todo, error) {
	where := map[string]interface{}{"id": todoID}
	sqlStr, args, err := builder.BuildSelect("todos", where, todoColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(r.db.Driver(), sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var todo model.Todo
	if err := rows.Scan(&todo.ID, &todo.Description, &todo.Completed, &todo.UserID, &todo.Ctime, &todo.Mtime); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *TodoRepo) ListByOwner(ctx context.Context, userID string) ([]model.Todo, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc",
	}
	sqlStr, args, err := builder.BuildSelect("todos", where, todoColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(r.db.Driver(), sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	todos := make([]model.Todo, 0)
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(&todo.ID, &todo.Description, &todo.Completed, &todo.UserID, &todo.Ctime, &todo.Mtime); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// UpdateByOwner replaces description and completed in a single conditional
// statement; zero rows affected means the todo is missing or owned by
// someone else, and the two cases are intentionally indistinguishable.
func (r *TodoRepo) UpdateByOwner(ctx context.Context, userID, todoID, description string, completed bool, mtime int64) error {
	where := map[string]interface{}{
		"id":      todoID,
		"user_id": userID,
	}
	update := map[string]interface{}{
		"description": description,
		"completed":   completed,
		"mtime":       mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("todos", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(r.db.Driver(), sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

// DeleteByID removes by id alone; deletes are not ownership scoped.
func (r *TodoRepo) DeleteByID(ctx context.Context, todoID string) error {
	where := map[string]interface{}{"id": todoID}
	sqlStr, args, err := builder.BuildDelete("todos", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(r.db.Driver(), sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}
