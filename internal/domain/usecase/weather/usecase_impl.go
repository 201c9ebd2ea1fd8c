package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/internal/domain/registry"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	registry   registry.CityRegistry
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(cityRegistry registry.CityRegistry, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		registry:   cityRegistry,
		apiGateway: apiGateway,
	}
}

func (uc *weatherUseCase) ListCities() []string {
	return uc.registry.Names()
}

// GetWeather resolves the city, calls the provider and classifies the answer
func (uc *weatherUseCase) GetWeather(ctx context.Context, cityName string) (*model.WeatherView, error) {
	city, ok := uc.registry.Lookup(cityName)
	if !ok {
		return nil, model.NewUnknownCityError(msg.GetMessage("weather.unsupported-city", uc.supportedCities()))
	}

	log.Debug(msg.GetMessage("weather.request", city.Name), zap.String("city", city.Name))

	response, err := uc.apiGateway.FetchWeather(ctx, city)
	if err != nil {
		log.Error(err.Error(),
			zap.String("city", city.Name),
			zap.String("url", uc.apiGateway.ResourceURL()))
		return nil, err
	}

	if !response.IsSuccess() {
		message := msg.GetMessage("weather.non-2xx", uc.apiGateway.ResourceURL(), response.StatusCode)
		log.Error(message,
			zap.String("city", city.Name),
			zap.String("url", uc.apiGateway.ResourceURL()),
			zap.Int("status", response.StatusCode),
			zap.String("provider_message", providerMessage(response)))
		return nil, model.NewProviderUnavailableError(errorStatus(response.StatusCode), message, nil)
	}

	view, err := Transform(city, response.Body)
	if err != nil {
		log.Error(err.Error(), zap.String("city", city.Name), zap.String("url", uc.apiGateway.ResourceURL()))
		return nil, err
	}

	return view, nil
}

// WarmUpCache refreshes every city sequentially. A failing city is logged and does not
// stop the others; the context being cancelled does.
func (uc *weatherUseCase) WarmUpCache(ctx context.Context) (int, error) {
	ctx = api.WithCacheBypass(ctx)
	refreshed := 0

	for _, name := range uc.registry.Names() {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}

		city, _ := uc.registry.Lookup(name)
		response, err := uc.apiGateway.FetchWeather(ctx, city)
		if err != nil {
			log.Warn(msg.GetMessage("weather.warmup.city-failed", city.Name), zap.String("city", city.Name), zap.Error(err))
			continue
		}
		if !response.IsSuccess() {
			log.Warn(msg.GetMessage("weather.warmup.city-failed", city.Name),
				zap.String("city", city.Name),
				zap.Int("status", response.StatusCode))
			continue
		}
		refreshed++
	}

	if refreshed == 0 {
		return 0, errors.New("no city could be refreshed")
	}
	return refreshed, nil
}

// errorStatus keeps 4xx and 5xx upstream statuses. Anything else that is not a 2xx,
// such as an unfollowable 3xx, is reported as 502.
func errorStatus(upstream int) int {
	if upstream >= http.StatusBadRequest && upstream < 600 {
		return upstream
	}
	return http.StatusBadGateway
}

func (uc *weatherUseCase) supportedCities() string {
	return "[" + strings.Join(uc.registry.Names(), ", ") + "]"
}

// providerMessage extracts the message field of an error body, when there is one.
func providerMessage(response *external.RawWeatherResponse) string {
	var apiErr external.APIErrorResponse
	if err := json.Unmarshal(response.Body, &apiErr); err != nil {
		return ""
	}
	return apiErr.Message
}
