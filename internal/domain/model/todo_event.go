package model

import (
	"time"
	"todo-api/internal/domain/entity"
)

type TodoEventType string

const (
	TodoCreated       TodoEventType = "todo.created"
	TodoStatusChanged TodoEventType = "todo.status-changed"
	TodoReport        TodoEventType = "todo.report"
)

// TodoEvent is published after a todo write, and by the status report schedule.
type TodoEvent struct {
	EventID        string                      `json:"eventId"`
	Type           TodoEventType               `json:"type"`
	TodoID         string                      `json:"todoId,omitempty"`
	Status         entity.TodoStatus           `json:"status,omitempty"`
	PreviousStatus entity.TodoStatus           `json:"previousStatus,omitempty"`
	Counts         map[entity.TodoStatus]int64 `json:"counts,omitempty"`
	OccurredAt     time.Time                   `json:"occurredAt"`
	Todo           *entity.Todo                `json:"todo,omitempty"`
}
