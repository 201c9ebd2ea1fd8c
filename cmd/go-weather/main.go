package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/application/view"
	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/registry"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title go-weather
// @version 1.0
// @description Current weather for a fixed set of cities, rendered as HTML.
// @BasePath /
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init registry
	cityRegistry, err := registry.NewCityRegistry(loadCities())
	if err != nil {
		log.Fatal("Invalid city configuration", zap.Error(err))
	}

	// Init gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather-api.base-url"),
		resource.GetString("app.weather-api.path"),
		resource.GetString("app.weather-api.api-key"),
		httpclient.ClientOptions{
			ConnectionTimeout: resource.GetDuration("app.weather-api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("app.weather-api.read-timeout"),
		})

	redisClient := newRedisClient()
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		payloadCache := redis.NewCache(redisClient, "weather", resource.GetDuration("app.redis.cache-ttl"))
		weatherGateway = api.NewCachedWeatherGateway(weatherGateway, payloadCache)
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(cityRegistry, weatherGateway)
	healthUseCase := health.NewHealthUseCase(cityRegistry, cache.NewRedisHealthGateway(redisClient))

	// Init infra
	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = controller.ErrorHandler
	middleware.Setup(e)
	group := e.Group(strings.TrimRight(resource.GetString("app.server.context-path"), "/"))

	// Init Controller
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if scheduler := newCacheWarmUpScheduler(weatherUseCase, redisClient); scheduler != nil {
		defer scheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// loadCities reads app.cities, falling back to the built-in entries when the key is empty
func loadCities() []entity.City {
	var cities []entity.City
	if err := resource.UnmarshalKey("app.cities", &cities); err != nil {
		log.Fatal("Failed to read app.cities", zap.Error(err))
	}
	if len(cities) == 0 {
		return registry.DefaultCities()
	}
	return cities
}

// newRedisClient returns nil when caching is disabled
func newRedisClient() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDuration("app.redis.cache-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		// the cached gateway treats redis faults as misses, so startup goes on
		log.Warn("Redis is not reachable", zap.String("addr", config.Addr()), zap.Error(err))
	}
	return client
}

// newCacheWarmUpScheduler needs both a cache to warm and a cron expression
func newCacheWarmUpScheduler(useCase weather.UseCase, redisClient *redis.Client) *schedule.CacheWarmUpScheduler {
	cronExpression := resource.GetString("app.schedule.cache-warmup.cron")
	if redisClient == nil || cronExpression == "" {
		return nil
	}

	lockTTL := resource.GetDuration("app.schedule.cache-warmup.lock-ttl")
	scheduler := schedule.NewCacheWarmUpScheduler(useCase, schedule.RedisLocker(redisClient, lockTTL), lockTTL)
	if err := scheduler.InitCacheWarmUpTasks(cronExpression); err != nil {
		log.Fatal("Invalid cache warm-up cron expression", zap.Error(err))
	}
	return scheduler
}
