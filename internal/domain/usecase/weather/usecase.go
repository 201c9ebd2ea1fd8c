package weather

import (
	"context"

	"go-weather/internal/domain/model"
)

type UseCase interface {
	// ListCities returns the supported city names in registry order
	ListCities() []string

	// GetWeather fetches and renders the current weather for a city.
	// Exactly one of the view and a *model.WeatherError is returned.
	GetWeather(ctx context.Context, cityName string) (*model.WeatherView, error)

	// WarmUpCache fetches every registered city once, skipping cached copies,
	// and returns how many cities were refreshed
	WarmUpCache(ctx context.Context) (int, error)
}
