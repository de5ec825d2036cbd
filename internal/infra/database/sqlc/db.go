package sqlc

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	"time"
	"todo-api/internal/infra/database"
)

// Open connects to Postgres through lib/pq and verifies the connection.
func Open(ctx context.Context, cfg database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return db, nil
}
