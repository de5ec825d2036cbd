package todo

import (
	"context"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type UseCase interface {
	List(ctx context.Context, filter model.FilterTodosDTO) ([]entity.Todo, error)
	Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error)
	UpdateStatus(ctx context.Context, id string, dto model.UpdateTodoStatusDTO) (*entity.Todo, error)
	CountByStatus(ctx context.Context) (map[entity.TodoStatus]int64, error)
}
