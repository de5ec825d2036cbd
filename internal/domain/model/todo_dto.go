package model

import "todo-api/internal/domain/entity"

type CreateTodoDTO struct {
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Status      *entity.TodoStatus `json:"status,omitempty"`
}

type UpdateTodoStatusDTO struct {
	Status entity.TodoStatus `json:"status"`
}

// FilterTodosDTO selects todos by status; an empty Status means the default visible statuses.
type FilterTodosDTO struct {
	Status []entity.TodoStatus `json:"status,omitempty"`
}
