package todo

import (
	"context"
	"go.uber.org/zap"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway   db.TodoGateway
	cache     cache.TodoCache
	publisher queue.TodoEventPublisher
}

func NewTodoUseCase(gateway db.TodoGateway, todoCache cache.TodoCache, publisher queue.TodoEventPublisher) UseCase {
	if todoCache == nil {
		todoCache = cache.NoopTodoCache{}
	}
	if publisher == nil {
		publisher = queue.NoopTodoEventPublisher{}
	}
	return &todoUseCase{
		gateway:   gateway,
		cache:     todoCache,
		publisher: publisher,
	}
}

func (uc *todoUseCase) List(ctx context.Context, filter model.FilterTodosDTO) ([]entity.Todo, error) {
	statuses := filter.Status
	if len(statuses) == 0 {
		statuses = entity.DefaultVisibleStatuses
	}

	// The generation is read before the store so a write that lands while the
	// query runs leaves this result under a key later lists do not read.
	generation, err := uc.cache.Generation(ctx)
	cacheable := err == nil
	if err != nil {
		log.Error(msg.GetMessage("todo.error.cache", "generation"), zap.Error(err))
	}

	if cacheable {
		cached, found, err := uc.cache.GetList(ctx, generation, statuses)
		if err != nil {
			log.Error(msg.GetMessage("todo.error.cache", "get"), zap.Error(err))
		}
		if found {
			return cached, nil
		}
	}

	todos, err := uc.gateway.FindByStatuses(ctx, statuses)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = make([]entity.Todo, 0)
	}

	if cacheable {
		if err := uc.cache.SetList(ctx, generation, statuses, todos); err != nil {
			log.Error(msg.GetMessage("todo.error.cache", "set"), zap.Error(err))
		}
	}
	return todos, nil
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	status := entity.TodoStatusNew
	if dto.Status != nil {
		status = *dto.Status
	}

	created, err := uc.gateway.Create(ctx, entity.Todo{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, model.TodoEvent{
		Type:   model.TodoCreated,
		TodoID: created.ID,
		Status: created.Status,
		Todo:   created,
	})
	return created, nil
}

func (uc *todoUseCase) UpdateStatus(ctx context.Context, id string, dto model.UpdateTodoStatusDTO) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &model.NotFoundError{Resource: "Todo", ID: id}
	}

	updated, err := uc.gateway.UpdateStatus(ctx, id, dto.Status)
	if err != nil {
		return nil, err
	}
	// Removed between the read and the write.
	if updated == nil {
		return nil, &model.NotFoundError{Resource: "Todo", ID: id}
	}

	uc.afterWrite(ctx, model.TodoEvent{
		Type:           model.TodoStatusChanged,
		TodoID:         updated.ID,
		Status:         updated.Status,
		PreviousStatus: existing.Status,
		Todo:           updated,
	})
	return updated, nil
}

func (uc *todoUseCase) CountByStatus(ctx context.Context) (map[entity.TodoStatus]int64, error) {
	counts, err := uc.gateway.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[entity.TodoStatus]int64, len(entity.TodoStatuses))
	for _, status := range entity.TodoStatuses {
		result[status] = counts[status]
	}
	return result, nil
}

// afterWrite drops cached lists and announces the change. Neither failure is returned.
func (uc *todoUseCase) afterWrite(ctx context.Context, event model.TodoEvent) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		log.Error(msg.GetMessage("todo.error.cache", "invalidate"), zap.Error(err))
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Error(msg.GetMessage("todo.error.publish", event.Type),
			zap.String("todo_id", event.TodoID),
			zap.Error(err))
	}
}
