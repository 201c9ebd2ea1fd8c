package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) ListCities() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockUseCase) GetWeather(ctx context.Context, cityName string) (*model.WeatherView, error) {
	args := m.Called(ctx, cityName)
	view, _ := args.Get(0).(*model.WeatherView)
	return view, args.Error(1)
}

func (m *mockUseCase) WarmUpCache(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func alwaysLocked(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func neverLocked(context.Context, func(ctx context.Context) error) error {
	return redis.ErrLockHeld
}

func TestExecuteScheduledTask_RunsUnderLock(t *testing.T) {
	useCase := new(mockUseCase)
	useCase.On("WarmUpCache", mock.Anything).Return(3, nil).Once()

	NewCacheWarmUpScheduler(useCase, alwaysLocked, time.Minute).ExecuteScheduledTask()

	useCase.AssertExpectations(t)
}

func TestExecuteScheduledTask_SkipsWhenLockHeld(t *testing.T) {
	useCase := new(mockUseCase)

	NewCacheWarmUpScheduler(useCase, neverLocked, time.Minute).ExecuteScheduledTask()

	useCase.AssertNotCalled(t, "WarmUpCache", mock.Anything)
}

func TestExecuteScheduledTask_SurvivesFailure(t *testing.T) {
	useCase := new(mockUseCase)
	useCase.On("WarmUpCache", mock.Anything).Return(0, errors.New("no city could be refreshed")).Once()

	assert.NotPanics(t, func() {
		NewCacheWarmUpScheduler(useCase, alwaysLocked, time.Minute).ExecuteScheduledTask()
	})
	useCase.AssertExpectations(t)
}

func TestExecuteScheduledTask_BoundsTheRun(t *testing.T) {
	useCase := new(mockUseCase)
	useCase.On("WarmUpCache", mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline
	})).Return(1, nil).Once()

	NewCacheWarmUpScheduler(useCase, alwaysLocked, time.Minute).ExecuteScheduledTask()

	useCase.AssertExpectations(t)
}

func TestInitCacheWarmUpTasks_InvalidCron(t *testing.T) {
	scheduler := NewCacheWarmUpScheduler(new(mockUseCase), alwaysLocked, time.Minute)

	assert.Error(t, scheduler.InitCacheWarmUpTasks("not a cron"))
}

func TestInitCacheWarmUpTasks_StartsAndStops(t *testing.T) {
	scheduler := NewCacheWarmUpScheduler(new(mockUseCase), alwaysLocked, time.Minute)

	assert.NoError(t, scheduler.InitCacheWarmUpTasks("@every 1h"))
	scheduler.Stop()
}
