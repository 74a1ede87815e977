// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued through
// asynq.Client and processed by the handlers registered on asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// enqueuer is the part of asynq.Client used to push tasks.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	client enqueuer
	server *asynq.Server
	logger *zerolog.Logger

	mailer alertMailer
}

// NewJobService creates a JobService backed by the Redis in cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger:   &asynqLogger{logger: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the workers. It returns once the
// workers are running.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskLowStock, j.handleLowStockTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("starting asynq server: %w", err)
	}
	return nil
}

// Stop waits for running tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("closing asynq client")
	}
}

// asynqLogger routes asynq's internal logging into zerolog.
type asynqLogger struct {
	logger *zerolog.Logger
}

func (l *asynqLogger) Debug(args ...any) {
	l.logger.Debug().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
func (l *asynqLogger) Info(args ...any) {
	l.logger.Info().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
func (l *asynqLogger) Warn(args ...any) {
	l.logger.Warn().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
func (l *asynqLogger) Error(args ...any) {
	l.logger.Error().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
func (l *asynqLogger) Fatal(args ...any) {
	l.logger.Fatal().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
