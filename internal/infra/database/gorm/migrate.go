package gorm

import (
	"context"
	"fmt"
	"gorm.io/gorm"
	"todo-api/internal/domain/entity"
)

const createStatusEnum = `DO $$
BEGIN
	CREATE TYPE todo_status_enum AS ENUM ('New', 'In Progress', 'Completed');
EXCEPTION
	WHEN duplicate_object THEN NULL;
END $$;`

// Migrate creates the status enum type when missing and syncs the todos table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.Exec(createStatusEnum).Error; err != nil {
		return fmt.Errorf("failed to create todo_status_enum: %w", err)
	}
	if err := tx.AutoMigrate(&entity.Todo{}); err != nil {
		return fmt.Errorf("failed to migrate todos: %w", err)
	}
	return nil
}
