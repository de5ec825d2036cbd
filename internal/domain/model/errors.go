package model

import "todo-api/pkg/msg"

// ValidationError reports a request that failed shape validation. Message is
// user facing and already names the field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return msg.GetMessage("todo.error.not-found", e.ID)
}
