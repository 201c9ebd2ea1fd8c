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

const lockNamespace = "weather_schedules"

// Locker runs fn only when the distributed lock could be taken.
// It returns redis.ErrLockHeld without running fn otherwise.
type Locker func(ctx context.Context, fn func(ctx context.Context) error) error

// RedisLocker builds a Locker backed by a redis lock that expires after ttl.
func RedisLocker(client *redis.Client, ttl time.Duration) Locker {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return redis.WithLock(ctx, redis.NewLock(client, lockNamespace, "cache_warmup", ttl), fn)
	}
}

// CacheWarmUpScheduler refreshes the weather cache on a cron schedule. Only the replica
// holding the lock runs a given tick.
type CacheWarmUpScheduler struct {
	cron    *cron.Cron
	useCase weather.UseCase
	locker  Locker
	timeout time.Duration
}

func NewCacheWarmUpScheduler(useCase weather.UseCase, locker Locker, timeout time.Duration) *CacheWarmUpScheduler {
	return &CacheWarmUpScheduler{
		cron:    cron.New(),
		useCase: useCase,
		locker:  locker,
		timeout: timeout,
	}
}

// InitCacheWarmUpTasks registers the job and starts the cron
func (s *CacheWarmUpScheduler) InitCacheWarmUpTasks(cronExpression string) error {
	if _, err := s.cron.AddFunc(cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Cache warm-up scheduler started with cron expression: %s", cronExpression)
	return nil
}

// ExecuteScheduledTask runs one warm-up under the lock
func (s *CacheWarmUpScheduler) ExecuteScheduledTask() {
	requestID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.locker(ctx, func(ctx context.Context) error {
		log.Info(msg.GetMessage("weather.warmup.start"), zap.String("request_id", requestID))

		refreshed, err := s.useCase.WarmUpCache(ctx)
		if err != nil {
			return err
		}

		log.Info(msg.GetMessage("weather.warmup.end", refreshed), zap.String("request_id", requestID))
		return nil
	})

	switch {
	case errors.Is(err, redis.ErrLockHeld):
		log.Info(msg.GetMessage("weather.warmup.lock-skipped"), zap.String("request_id", requestID))
	case err != nil:
		log.Error("Cache warm-up failed", zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop waits for a running task and stops the scheduler
func (s *CacheWarmUpScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
