package queue

import (
	"context"
	"github.com/google/uuid"
	"time"
	"todo-api/internal/domain/model"
)

// TodoEventPublisher announces todo changes to downstream consumers.
type TodoEventPublisher interface {
	Publish(ctx context.Context, event model.TodoEvent) error
}

type QueueTodoEventPublisher struct {
	sender    Sender
	queueName string
	now       func() time.Time
}

var _ TodoEventPublisher = (*QueueTodoEventPublisher)(nil)

func NewQueueTodoEventPublisher(sender Sender, queueName string) *QueueTodoEventPublisher {
	return &QueueTodoEventPublisher{
		sender:    sender,
		queueName: queueName,
		now:       time.Now,
	}
}

// Publish fills in the event id and timestamp when the caller left them empty.
func (p *QueueTodoEventPublisher) Publish(ctx context.Context, event model.TodoEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}
	return p.sender.SendMessage(ctx, p.queueName, event)
}

// NoopTodoEventPublisher drops every event; used when events are disabled.
type NoopTodoEventPublisher struct{}

func (NoopTodoEventPublisher) Publish(context.Context, model.TodoEvent) error {
	return nil
}
