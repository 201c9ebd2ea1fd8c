package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

// PayloadCache stores provider bodies by key. Get returns redis.ErrCacheMiss when empty.
type PayloadCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}

type bypassCacheKey struct{}

// WithCacheBypass marks ctx so the cached gateway skips the read and always calls the provider.
// The fresh answer is still written back.
func WithCacheBypass(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassCacheKey{}, true)
}

// IsCacheBypassed reports whether ctx was marked by WithCacheBypass.
func IsCacheBypassed(ctx context.Context) bool {
	bypass, _ := ctx.Value(bypassCacheKey{}).(bool)
	return bypass
}

// cachedWeatherGateway serves 2xx bodies from a cache keyed by provider id.
// Cache faults are logged and the provider is called as if the cache were absent.
type cachedWeatherGateway struct {
	delegate WeatherGateway
	cache    PayloadCache
}

func NewCachedWeatherGateway(delegate WeatherGateway, cache PayloadCache) WeatherGateway {
	return &cachedWeatherGateway{delegate: delegate, cache: cache}
}

func (g *cachedWeatherGateway) ResourceURL() string {
	return g.delegate.ResourceURL()
}

func (g *cachedWeatherGateway) FetchWeather(ctx context.Context, city entity.City) (*external.RawWeatherResponse, error) {
	if !IsCacheBypassed(ctx) {
		payload, err := g.cache.Get(ctx, city.ProviderID)
		switch {
		case err == nil:
			log.Debug(msg.GetMessage("weather.cache.hit", city.Name))
			return &external.RawWeatherResponse{StatusCode: http.StatusOK, Body: payload}, nil
		case !errors.Is(err, redis.ErrCacheMiss):
			log.Warn(msg.GetMessage("weather.cache.read-failed", city.Name), zap.String("city", city.Name), zap.Error(err))
		}
	}

	response, err := g.delegate.FetchWeather(ctx, city)
	if err != nil {
		return nil, err
	}

	if response.IsSuccess() && json.Valid(response.Body) {
		if err := g.cache.Set(ctx, city.ProviderID, response.Body); err != nil {
			log.Warn(msg.GetMessage("weather.cache.write-failed", city.Name), zap.String("city", city.Name), zap.Error(err))
		}
	}

	return response, nil
}
