package db

import (
	"context"
	"database/sql"
	"errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"todo-api/internal/domain/entity"
)

const todoColumns = `id, title, description, status, created_at, updated_at`

type SQLCTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*entity.Todo, error) {
	var t entity.Todo
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (gateway *SQLCTodoGateway) FindByStatuses(ctx context.Context, statuses []entity.TodoStatus) (todos []entity.Todo, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE status = ANY($1::todo_status_enum[])
		ORDER BY created_at DESC`, pq.Array(statusStrings(statuses)))
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make([]entity.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (gateway *SQLCTodoGateway) CountByStatus(ctx context.Context) (counts map[entity.TodoStatus]int64, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM todos
		GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make(map[entity.TodoStatus]int64)
	for rows.Next() {
		var status entity.TodoStatus
		var total int64
		if err := rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		results[status] = total
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (gateway *SQLCTodoGateway) Create(ctx context.Context, todo entity.Todo) (*entity.Todo, error) {
	todo.ID = uuid.New().String()

	err := gateway.DB.QueryRowContext(ctx, `
		INSERT INTO todos (id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`,
		todo.ID, todo.Title, todo.Description, string(todo.Status)).
		Scan(&todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *SQLCTodoGateway) UpdateStatus(ctx context.Context, id string, status entity.TodoStatus) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		UPDATE todos
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+todoColumns, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}
