package main

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"io"
	"todo-api/internal/domain/entity"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	newStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func statusLabel(status entity.TodoStatus) string {
	label := fmt.Sprintf("%-11s", status)
	switch status {
	case entity.TodoStatusNew:
		return newStyle.Render(label)
	case entity.TodoStatusInProgress:
		return pendingStyle.Render(label)
	case entity.TodoStatusCompleted:
		return successStyle.Render(label)
	default:
		return label
	}
}

func printTodo(w io.Writer, todo entity.Todo) {
	line := fmt.Sprintf("%s  %s  %s", mutedStyle.Render(todo.ID), statusLabel(todo.Status), titleStyle.Render(todo.Title))
	if todo.Description != nil && *todo.Description != "" {
		line += "  " + mutedStyle.Render(*todo.Description)
	}
	fmt.Fprintln(w, line)
}

func ok(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render("✔ "+msg))
}

func fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("✖ "+msg))
}
