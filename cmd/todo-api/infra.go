package main

import (
	"context"
	"database/sql"
	"fmt"
	"go.uber.org/zap"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/infra/aws"
	"todo-api/internal/infra/database"
	"todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqlc"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

type store struct {
	sqlDB         *sql.DB
	todoGateway   db.TodoGateway
	healthGateway db.HealthDBGateway
}

func (s *store) Close() {
	if err := s.sqlDB.Close(); err != nil {
		log.Error(err.Error(), zap.Error(err))
	}
}

// openStore connects once through lib/pq and layers GORM over the same pool.
// app.db.driver picks which gateway flavour serves requests.
func openStore(ctx context.Context) (*store, error) {
	cfg := database.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("db.error.driver", cfg.Driver), err)
	}

	sqlDB, err := sqlc.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("db.error.connect", cfg.Database), err)
	}

	gormDB, err := gorm.Open(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("db.error.connect", cfg.Database), err)
	}

	if cfg.AutoMigrate {
		if err := gorm.Migrate(ctx, gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info(msg.GetMessage("db.migrated", "todos"))
	}

	s := &store{sqlDB: sqlDB}
	switch cfg.Driver {
	case database.DriverSQLC:
		s.todoGateway = db.NewSQLCTodoGateway(sqlDB)
		s.healthGateway = db.NewSQLCHealthDBGateway(sqlDB)
	default:
		s.todoGateway = db.NewGormTodoGateway(gormDB)
		s.healthGateway = db.NewGormHealthDBGateway(gormDB)
	}

	log.Info(msg.GetMessage("db.connected", cfg.Database, cfg.Driver))
	return s, nil
}

// openCache returns the Redis list cache when enabled. An unreachable Redis is
// logged and left in place; list calls fall back to the store on every miss.
func openCache(ctx context.Context) (cache.TodoCache, func()) {
	if !resource.GetBool("app.redis.enabled") {
		log.Info(msg.GetMessage("redis.disabled"))
		return cache.NoopTodoCache{}, func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDuration("app.redis.cache-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Error(msg.GetMessage("redis.error.connect", config.Addr()), zap.Error(err))
		return cache.NoopTodoCache{}, func() {}
	}

	if err := client.Ping(ctx); err != nil {
		log.Error(msg.GetMessage("redis.error.connect", config.Addr()), zap.Error(err))
	} else {
		log.Info(msg.GetMessage("redis.connected", config.Addr()))
	}

	return cache.NewRedisTodoCache(client), func() { _ = client.Close() }
}

func openPublisher(ctx context.Context) queue.TodoEventPublisher {
	if !resource.GetBool("app.events.enabled") {
		log.Info(msg.GetMessage("events.disabled"))
		return queue.NoopTodoEventPublisher{}
	}

	settings := aws.LoadSettings()
	cfg, err := aws.LoadConfig(ctx, settings)
	if err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}

	queueName := resource.GetString("app.events.queue-name")
	sender := aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg, settings.Endpoint))
	log.Info(msg.GetMessage("events.enabled", queueName))
	return queue.NewQueueTodoEventPublisher(sender, queueName)
}
