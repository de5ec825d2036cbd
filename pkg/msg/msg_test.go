package msg

import (
	"errors"
	"testing"
)

type status string

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		key  string
		args []any
		want string
	}{
		{"string arg", "todo.error.not-found", []any{"42"}, "Todo with id 42 not found"},
		{"named string type", "todo.error.not-found", []any{status("abc")}, "Todo with id abc not found"},
		{"two args", "todo.error.invalid-field", []any{"title", "too long"}, "title: too long"},
		{"error arg", "todo.error.invalid-field", []any{"body", errors.New("bad json")}, "body: bad json"},
		{"no args", "todo.error.invalid-status", nil, "status must be New, In Progress, or Completed"},
		{"missing key", "nope.nothing", nil, "Message not found: nope.nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Errorf("GetMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
