package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/api"
	"todo-api/internal/domain/model"
	"todo-api/pkg/http"
)

// run parses the global flags and dispatches to a subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todoctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	baseURL := fs.String("url", "", "Server base URL (env "+urlEnv+", default "+defaultURL+")")
	configPath := fs.String("config", "", "TOML config file (default todoctl.toml when present)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		cfg.URL = *baseURL
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, stderr)
		return errors.New("missing command")
	}

	gateway := api.NewTodoAPIGateway(cfg.URL, http.ClientOptions{ReadTimeout: cfg.Timeout.Duration})
	cmd, cmdArgs := remaining[0], remaining[1:]
	switch cmd {
	case "list":
		return listCommand(ctx, gateway, cmdArgs, stdout, stderr)
	case "create":
		return createCommand(ctx, gateway, cmdArgs, stdout, stderr)
	case "status":
		return statusCommand(ctx, gateway, cmdArgs, stdout)
	case "advance":
		return advanceCommand(ctx, gateway, cmdArgs, stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func listCommand(ctx context.Context, gateway api.TodoAPIGateway, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todoctl list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	status := fs.String("status", "", "Comma-separated statuses (default New,In Progress)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var statuses []entity.TodoStatus
	for _, value := range strings.Split(*status, ",") {
		if value = strings.TrimSpace(value); value == "" {
			continue
		}
		parsed, err := entity.ParseTodoStatus(value)
		if err != nil {
			return err
		}
		statuses = append(statuses, parsed)
	}

	todos, err := gateway.ListTodos(ctx, statuses)
	if err != nil {
		return err
	}
	if len(todos) == 0 {
		fmt.Fprintln(stdout, mutedStyle.Render("No todos found."))
		return nil
	}
	for _, todo := range todos {
		printTodo(stdout, todo)
	}
	return nil
}

func createCommand(ctx context.Context, gateway api.TodoAPIGateway, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todoctl create", flag.ContinueOnError)
	fs.SetOutput(stderr)
	title := fs.String("title", "", "Todo title (required)")
	description := fs.String("description", "", "Todo description")
	status := fs.String("status", "", "Initial status (default New)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dto := model.CreateTodoDTO{Title: *title}
	var statusErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "description":
			dto.Description = description
		case "status":
			parsed, err := entity.ParseTodoStatus(*status)
			if err != nil {
				statusErr = err
				return
			}
			dto.Status = &parsed
		}
	})
	if statusErr != nil {
		return statusErr
	}

	created, err := gateway.CreateTodo(ctx, dto)
	if err != nil {
		return err
	}
	ok(stdout, "Created")
	printTodo(stdout, *created)
	return nil
}

func statusCommand(ctx context.Context, gateway api.TodoAPIGateway, args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return errors.New("usage: todoctl status <id> <status>")
	}
	status, err := entity.ParseTodoStatus(args[1])
	if err != nil {
		return err
	}
	updated, err := gateway.UpdateTodoStatus(ctx, args[0], status)
	if err != nil {
		return err
	}
	ok(stdout, "Updated")
	printTodo(stdout, *updated)
	return nil
}

// advanceCommand moves a todo to the next status in the New, In Progress, Completed cycle.
func advanceCommand(ctx context.Context, gateway api.TodoAPIGateway, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: todoctl advance <id>")
	}
	id := args[0]

	todos, err := gateway.ListTodos(ctx, entity.TodoStatuses)
	if err != nil {
		return err
	}

	var current *entity.Todo
	for i := range todos {
		if strings.EqualFold(todos[i].ID, id) {
			current = &todos[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("todo %s not found", id)
	}

	updated, err := gateway.UpdateTodoStatus(ctx, current.ID, current.Status.Next())
	if err != nil {
		return err
	}
	ok(stdout, fmt.Sprintf("%s -> %s", current.Status, updated.Status))
	printTodo(stdout, *updated)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("todoctl")+" - command-line client for the todo API")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todoctl [flags] list [-status A,B]")
	fmt.Fprintln(w, "  todoctl [flags] create -title T [-description D] [-status S]")
	fmt.Fprintln(w, "  todoctl [flags] status <id> <status>")
	fmt.Fprintln(w, "  todoctl [flags] advance <id>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
