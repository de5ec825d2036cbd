package db

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"todo-api/internal/domain/entity"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindByStatuses(ctx context.Context, statuses []entity.TodoStatus) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	err := gateway.DB.WithContext(ctx).
		Where("status IN ?", statusStrings(statuses)).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.WithContext(ctx).First(&todo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) CountByStatus(ctx context.Context) (map[entity.TodoStatus]int64, error) {
	var rows []struct {
		Status entity.TodoStatus
		Total  int64
	}
	err := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.TodoStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	todo.ID = uuid.New().String()
	if err := gateway.DB.WithContext(ctx).Create(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateStatus writes the status column only and reloads the row so the
// returned todo carries the updated_at set by the store.
func (gateway *GormTodoGateway) UpdateStatus(ctx context.Context, id string, status entity.TodoStatus) (*entity.Todo, error) {
	result := gateway.DB.WithContext(ctx).
		Model(&entity.Todo{ID: id}).
		Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return gateway.FindByID(ctx, id)
}
