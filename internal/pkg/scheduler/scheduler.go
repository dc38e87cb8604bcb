package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"guide-booking-service/config"
	"guide-booking-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeReferralPayoutBatch = "referral:payout_batch"
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	// trailing slash is required by net/http.ServeMux
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+port, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

// StartPeriodic enqueues taskType on the cron spec until the process exits.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, cronspec string, taskType string) {
	ctx := context.Background()
	scheduler := asynq.NewScheduler(redisOpt(cfg), nil)

	if _, err := scheduler.Register(cronspec, asynq.NewTask(taskType, nil), asynq.MaxRetry(0)); err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
