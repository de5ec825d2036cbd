package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoCache holds list results keyed by generation and requested status set.
// Invalidate moves the generation forward, so a list computed before a write
// and stored after it lands under a generation nobody reads anymore.
type TodoCache interface {
	Generation(ctx context.Context) (int64, error)
	GetList(ctx context.Context, generation int64, statuses []entity.TodoStatus) ([]entity.Todo, bool, error)
	SetList(ctx context.Context, generation int64, statuses []entity.TodoStatus, todos []entity.Todo) error
	Invalidate(ctx context.Context) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

// ListKey is order independent: the same status set always maps to the same key.
func ListKey(generation int64, statuses []entity.TodoStatus) string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	slices.Sort(values)
	values = slices.Compact(values)
	return "list:" + strconv.FormatInt(generation, 10) + ":" + strings.Join(values, ",")
}
