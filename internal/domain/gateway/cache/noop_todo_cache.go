package cache

import (
	"context"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

// NoopTodoCache is used when Redis is disabled; every lookup misses.
type NoopTodoCache struct{}

var _ TodoCache = NoopTodoCache{}

func (NoopTodoCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (NoopTodoCache) GetList(context.Context, int64, []entity.TodoStatus) ([]entity.Todo, bool, error) {
	return nil, false, nil
}

func (NoopTodoCache) SetList(context.Context, int64, []entity.TodoStatus, []entity.Todo) error {
	return nil
}

func (NoopTodoCache) Invalidate(context.Context) error {
	return nil
}

func (NoopTodoCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": msg.GetMessage("redis.disabled")},
	}
}
