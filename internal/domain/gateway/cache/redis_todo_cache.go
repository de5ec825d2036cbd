package cache

import (
	"context"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/pkg/redis"
)

const (
	TodoCacheName = "todos"
	generationKey = "gen"
	listPattern   = "list:*"
)

type RedisTodoCache struct {
	client *redis.Client
	cache  *redis.Cache
}

var _ TodoCache = (*RedisTodoCache)(nil)

func NewRedisTodoCache(client *redis.Client) *RedisTodoCache {
	return &RedisTodoCache{
		client: client,
		cache:  redis.NewCache(client, TodoCacheName, 0),
	}
}

func (c *RedisTodoCache) Generation(ctx context.Context) (int64, error) {
	return c.cache.Counter(ctx, generationKey)
}

func (c *RedisTodoCache) GetList(ctx context.Context, generation int64, statuses []entity.TodoStatus) ([]entity.Todo, bool, error) {
	var todos []entity.Todo
	found, err := c.cache.Get(ctx, ListKey(generation, statuses), &todos)
	if err != nil || !found {
		return nil, false, err
	}
	if todos == nil {
		todos = make([]entity.Todo, 0)
	}
	return todos, true, nil
}

func (c *RedisTodoCache) SetList(ctx context.Context, generation int64, statuses []entity.TodoStatus, todos []entity.Todo) error {
	return c.cache.Set(ctx, ListKey(generation, statuses), todos)
}

// Invalidate bumps the generation, then drops the lists it made unreachable.
func (c *RedisTodoCache) Invalidate(ctx context.Context) error {
	if _, err := c.cache.Increment(ctx, generationKey); err != nil {
		return err
	}
	return c.cache.Clear(ctx, listPattern)
}

func (c *RedisTodoCache) Health(ctx context.Context) model.ComponentHealthStatus {
	details, err := c.client.HealthDetails(ctx)
	health := model.NewComponentHealth(err)
	for key, value := range details {
		health.Details[key] = value
	}
	return health
}
