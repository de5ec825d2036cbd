package schedule

import (
	"context"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"time"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const reportTimeout = 30 * time.Second

// TodoReportScheduler periodically logs and publishes how many todos sit in each status.
type TodoReportScheduler struct {
	cron      *cron.Cron
	useCase   todo.UseCase
	publisher queue.TodoEventPublisher
}

func NewTodoReportScheduler(useCase todo.UseCase, publisher queue.TodoEventPublisher) *TodoReportScheduler {
	return &TodoReportScheduler{cron: cron.New(), useCase: useCase, publisher: publisher}
}

// InitTodoReportScheduleTasks registers the report job and starts the scheduler
func (scheduler *TodoReportScheduler) InitTodoReportScheduleTasks(cronExpression string) error {
	if _, err := scheduler.cron.AddFunc(cronExpression, scheduler.ReportStatusCounts); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("todo.cron.registered", cronExpression))
	return nil
}

// Stop prevents new runs and returns a context that is done once a running report finishes.
func (scheduler *TodoReportScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}

func (scheduler *TodoReportScheduler) ReportStatusCounts() {
	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	log.Info(msg.GetMessage("todo.cron.start"), zap.String("request_id", requestID))

	counts, err := scheduler.useCase.CountByStatus(ctx)
	if err != nil {
		log.Error(msg.GetMessage("todo.cron.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("todo.cron.end"),
		zap.String("request_id", requestID),
		zap.Int64("new", counts[entity.TodoStatusNew]),
		zap.Int64("in_progress", counts[entity.TodoStatusInProgress]),
		zap.Int64("completed", counts[entity.TodoStatusCompleted]),
	)

	err = scheduler.publisher.Publish(ctx, model.TodoEvent{
		EventID: requestID,
		Type:    model.TodoReport,
		Counts:  counts,
	})
	if err != nil {
		log.Error(msg.GetMessage("todo.error.publish", model.TodoReport), zap.String("request_id", requestID), zap.Error(err))
	}
}
