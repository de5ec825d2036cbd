package api

import (
	"context"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoAPIGateway defines the remote calls against a running todo API
type TodoAPIGateway interface {
	// ListTodos returns the todos whose status is in statuses.
	// An empty statuses leaves the filter to the server default.
	ListTodos(ctx context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error)

	CreateTodo(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error)

	UpdateTodoStatus(ctx context.Context, id string, status entity.TodoStatus) (*entity.Todo, error)
}
