package db

import (
	"context"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"regexp"
	"testing"
	"time"
	"todo-api/internal/domain/entity"
	gormdb "todo-api/internal/infra/database/gorm"
)

func newMockGormGateway(t *testing.T) (*GormTodoGateway, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gormdb.Open(conn)
	if err != nil {
		t.Fatalf("gorm Open() error = %v", err)
	}
	return NewGormTodoGateway(db), mock
}

func TestGormTodoGatewayFindByStatuses(t *testing.T) {
	gateway, mock := newMockGormGateway(t)
	now := time.Now()

	rows := sqlmock.NewRows(todoRowColumns).
		AddRow("b7d1c5a2-1a4f-4a4e-9a7e-5f2d3c1b0a99", "Second", nil, "In Progress", now, now).
		AddRow("0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a", "First", "notes", "New", now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE status IN ($1,$2) ORDER BY created_at DESC`)).
		WithArgs("New", "In Progress").
		WillReturnRows(rows)

	todos, err := gateway.FindByStatuses(context.Background(), entity.DefaultVisibleStatuses)
	if err != nil {
		t.Fatalf("FindByStatuses() error = %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len(todos) = %d, want 2", len(todos))
	}
	if todos[0].Title != "Second" || todos[0].Status != entity.TodoStatusInProgress || todos[0].Description != nil {
		t.Errorf("todos[0] = %+v", todos[0])
	}
	if todos[1].Description == nil || *todos[1].Description != "notes" {
		t.Errorf("todos[1].Description = %v, want notes", todos[1].Description)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGormTodoGatewayFindByStatusesEmpty(t *testing.T) {
	gateway, mock := newMockGormGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE status IN ($1)`)).
		WithArgs("Completed").
		WillReturnRows(sqlmock.NewRows(todoRowColumns))

	todos, err := gateway.FindByStatuses(context.Background(), []entity.TodoStatus{entity.TodoStatusCompleted})
	if err != nil {
		t.Fatalf("FindByStatuses() error = %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Errorf("FindByStatuses() = %#v, want empty non-nil slice", todos)
	}
}

func TestGormTodoGatewayFindByID(t *testing.T) {
	id := "0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	now := time.Now()

	tests := []struct {
		name   string
		rows   *sqlmock.Rows
		wantOK bool
	}{
		{
			name:   "found",
			rows:   sqlmock.NewRows(todoRowColumns).AddRow(id, "Write docs", nil, "New", now, now),
			wantOK: true,
		},
		{
			name: "not found",
			rows: sqlmock.NewRows(todoRowColumns),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, mock := newMockGormGateway(t)
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE id = $1`)).
				WillReturnRows(tt.rows)

			todo, err := gateway.FindByID(context.Background(), id)
			if err != nil {
				t.Fatalf("FindByID() error = %v", err)
			}
			if (todo != nil) != tt.wantOK {
				t.Fatalf("FindByID() = %+v, want found=%v", todo, tt.wantOK)
			}
			if todo != nil && (todo.ID != id || todo.Title != "Write docs") {
				t.Errorf("FindByID() = %+v", todo)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestGormTodoGatewayCreate(t *testing.T) {
	gateway, mock := newMockGormGateway(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "todos" ("id","title","description","status","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6)`)).
		WithArgs(sqlmock.AnyArg(), "Buy milk", nil, "New", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := gateway.Create(context.Background(), entity.Todo{Title: "Buy milk", Status: entity.TodoStatusNew})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		t.Errorf("ID %q is not a uuid", created.ID)
	}
	if created.Description != nil {
		t.Errorf("Description = %q, want nil", *created.Description)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Errorf("timestamps not set: %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGormTodoGatewayUpdateStatus(t *testing.T) {
	id := "0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	created := time.Now().Add(-time.Hour)
	updateSQL := regexp.QuoteMeta(`UPDATE "todos" SET "status"=$1,"updated_at"=$2 WHERE "id" = $3`)

	t.Run("updated row is reloaded", func(t *testing.T) {
		gateway, mock := newMockGormGateway(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).
			WithArgs("Completed", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "todos" WHERE id = $1`)).
			WillReturnRows(sqlmock.NewRows(todoRowColumns).AddRow(id, "Write docs", nil, "Completed", created, time.Now()))

		todo, err := gateway.UpdateStatus(context.Background(), id, entity.TodoStatusCompleted)
		if err != nil {
			t.Fatalf("UpdateStatus() error = %v", err)
		}
		if todo == nil || todo.Status != entity.TodoStatusCompleted || !todo.CreatedAt.Equal(created) {
			t.Errorf("UpdateStatus() = %+v", todo)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("no row affected returns nil", func(t *testing.T) {
		gateway, mock := newMockGormGateway(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).
			WithArgs("Completed", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		todo, err := gateway.UpdateStatus(context.Background(), id, entity.TodoStatusCompleted)
		if err != nil || todo != nil {
			t.Errorf("UpdateStatus() = %+v, %v; want nil, nil", todo, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestGormTodoGatewayCountByStatus(t *testing.T) {
	gateway, mock := newMockGormGateway(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) AS total FROM "todos" GROUP BY "status"`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("New", 2).
			AddRow("Completed", 5))

	counts, err := gateway.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if counts[entity.TodoStatusNew] != 2 || counts[entity.TodoStatusCompleted] != 5 || counts[entity.TodoStatusInProgress] != 0 {
		t.Errorf("CountByStatus() = %v", counts)
	}
}
