package schedule

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	warmupLockKey       = "weather_cache_warmup"
	warmupLockNamespace = "weather_schedules"
)

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
}

// WeatherScheduler re-aggregates all cities on a schedule so the provider cache stays warm.
// With a Redis client, a per-run lock keeps several API instances from warming at once.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      *WeatherSchedulerConfig
}

// NewWeatherScheduler creates a new weather scheduler; redisClient may be nil
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, cronExpression string, lockTTL time.Duration) *WeatherScheduler {
	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &WeatherSchedulerConfig{
			CronExpression: cronExpression,
			LockTTL:        lockTTL,
		},
	}
}

// InitWeatherScheduleTasks registers the warm-up job and starts the cron runner
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("weather.warmup.registered", s.config.CronExpression))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// ExecuteScheduledTask runs one warm-up
func (s *WeatherScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("weather.warmup.start"), zap.String("request_id", requestID))

	if s.redisClient != nil {
		lock := redis.NewLock(s.redisClient, warmupLockKey, redis.NewLockOptions().
			WithTTL(s.getLockTTL()).
			WithRefreshInterval(s.getLockTTL()/3).
			WithLockNamespace(warmupLockNamespace))

		if err := lock.TryLock(ctx); err != nil {
			if errors.Is(err, redis.ErrLockNotAcquired) {
				log.Info(msg.GetMessage("weather.warmup.skipped"), zap.String("request_id", requestID))
			} else {
				log.Error("Failed to acquire weather warm-up lock", zap.String("request_id", requestID), zap.Error(err))
			}
			return
		}

		refreshCtx, stopRefresh := context.WithCancel(ctx)
		refreshErr := lock.AutoRefresh(refreshCtx)
		defer func() {
			stopRefresh()
			if err := <-refreshErr; err != nil {
				log.Warn("Weather warm-up lock refresh failed", zap.String("request_id", requestID), zap.Error(err))
			}
			if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil {
				log.Warn("Failed to release weather warm-up lock", zap.String("request_id", requestID), zap.Error(err))
			}
		}()
	}

	count, err := s.useCase.RefreshAllCitiesScheduled(ctx, requestID)
	if err != nil {
		log.Error("Weather cache warm-up failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.warmup.done", count), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *WeatherScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return time.Minute
}
