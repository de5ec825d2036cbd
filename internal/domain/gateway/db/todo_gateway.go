package db

import (
	"context"
	"todo-api/internal/domain/entity"
)

// TodoGateway persists todos. Lookups that match nothing return a nil todo and a nil error.
type TodoGateway interface {
	FindByStatuses(ctx context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)
	CountByStatus(ctx context.Context) (map[entity.TodoStatus]int64, error)

	Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error)
	UpdateStatus(ctx context.Context, id string, status entity.TodoStatus) (*entity.Todo, error)
}

func statusStrings(statuses []entity.TodoStatus) []string {
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}
	return values
}
