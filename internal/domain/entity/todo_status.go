package entity

import "fmt"

// TodoStatus is the workflow state of a todo
type TodoStatus string

const (
	TodoStatusNew        TodoStatus = "New"
	TodoStatusInProgress TodoStatus = "In Progress"
	TodoStatusCompleted  TodoStatus = "Completed"
)

// TodoStatuses lists every status in cycle order.
var TodoStatuses = []TodoStatus{TodoStatusNew, TodoStatusInProgress, TodoStatusCompleted}

// DefaultVisibleStatuses is the list filter applied when none is requested.
var DefaultVisibleStatuses = []TodoStatus{TodoStatusNew, TodoStatusInProgress}

func (s TodoStatus) IsValid() bool {
	for _, status := range TodoStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the New -> In Progress -> Completed -> New cycle.
// Unknown statuses restart the cycle at New.
func (s TodoStatus) Next() TodoStatus {
	for i, status := range TodoStatuses {
		if s == status {
			return TodoStatuses[(i+1)%len(TodoStatuses)]
		}
	}
	return TodoStatusNew
}

func (s TodoStatus) String() string {
	return string(s)
}

func ParseTodoStatus(value string) (TodoStatus, error) {
	status := TodoStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid todo status %q", value)
	}
	return status, nil
}
