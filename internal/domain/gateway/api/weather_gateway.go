package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather provider call
type WeatherGateway interface {
	// FetchWeather gets the current weather for a city.
	// Any HTTP answer, 2xx or not, is returned as a RawWeatherResponse; an error
	// means no answer was received and is a *model.WeatherError of kind ProviderUnavailable.
	FetchWeather(ctx context.Context, city entity.City) (*external.RawWeatherResponse, error)

	// ResourceURL is the provider URL without credentials, safe to log and show
	ResourceURL() string
}
