package health

import (
	"context"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway db.HealthDBGateway
	todoCache cache.TodoCache
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, todoCache cache.TodoCache) UseCase {
	return &healthUseCase{
		dbGateway: dbGateway,
		todoCache: todoCache,
	}
}

// CheckHealth is DOWN when any component is DOWN. A disabled cache reports UNKNOWN and is ignored.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	cacheHealth := useCase.todoCache.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}
