package main

import (
	"context"
	"errors"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"todo-api/configs"
	_ "todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
	"todo-api/web"
)

// @title todo-api
// @version 1.0
// @description List, create and advance todos.
// @BasePath /
func main() {
	defer func() { _ = log.Sync() }()

	appName := configs.Env.ApplicationName
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	todoStore, err := openStore(ctx)
	if err != nil {
		log.Fatal(err.Error(), zap.Error(err))
	}
	defer todoStore.Close()

	todoCache, closeCache := openCache(ctx)
	defer closeCache()

	publisher := openPublisher(ctx)

	// Init UseCase
	todoUseCase := todo.NewTodoUseCase(todoStore.todoGateway, todoCache, publisher)
	healthUseCase := health.NewHealthUseCase(todoStore.healthGateway, todoCache)

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	controller.NewTodoController(api, todoUseCase).InitTodoRoutes()
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)
	api.StaticFS("/", web.Public())

	// Init Schedule
	var reportScheduler *schedule.TodoReportScheduler
	if resource.GetBool("app.todo.report.enabled") {
		reportScheduler = schedule.NewTodoReportScheduler(todoUseCase, publisher)
		if err := reportScheduler.InitTodoReportScheduleTasks(resource.GetString("app.todo.report.cron")); err != nil {
			log.Fatal(err.Error(), zap.Error(err))
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(msg.GetMessage("app.error.server"), zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", appName))

	if reportScheduler != nil {
		<-reportScheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", appName), zap.Error(err))
	}

	log.Info(msg.GetMessage("app.stopped", appName))
}
