package api

import (
	"context"
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/msg"
)

const apiKeyParam = "appid"

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	httpClient *httpclient.Client
	path       string
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The api key is only ever sent as the appid query parameter and is redacted from logs and errors.
// Redirects are followed, so only a final answer reaches the caller.
func NewWeatherGateway(baseUrl, path, apiKey string, clientOptions httpclient.ClientOptions) WeatherGateway {
	clientOptions.SensitiveQueryParams = append(clientOptions.SensitiveQueryParams, apiKeyParam)
	clientOptions.FollowRedirect = true
	clientOptions.DefaultHeaders = map[string]string{"Accept": "application/json"}
	if clientOptions.Logger == nil {
		clientOptions.Logger = &httpclient.ZapHTTPLogger{Component: "openweathermap"}
	}

	return &weatherGatewayImpl{
		httpClient: httpclient.NewHttpClient(baseUrl, clientOptions),
		path:       path,
		apiKey:     apiKey,
	}
}

func (w *weatherGatewayImpl) ResourceURL() string {
	return w.httpClient.URL(w.path)
}

// FetchWeather gets the current weather for a city
func (w *weatherGatewayImpl) FetchWeather(ctx context.Context, city entity.City) (*external.RawWeatherResponse, error) {
	var body []byte

	_, _, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithPath(w.path).
		WithQueryParams(map[string]string{
			apiKeyParam: w.apiKey,
			"id":        city.ProviderID,
		}).
		WithSuccessResp(&body).
		WithErrorResp(&body).
		Execute()

	var transportErr *httpclient.TransportError
	if errors.As(err, &transportErr) {
		if transportErr.Timeout() {
			return nil, model.NewProviderUnavailableError(http.StatusGatewayTimeout,
				msg.GetMessage("weather.timeout", w.ResourceURL(), transportErr.Err), transportErr)
		}
		return nil, model.NewProviderUnavailableError(http.StatusBadGateway,
			msg.GetMessage("weather.unavailable", w.ResourceURL(), transportErr.Err), transportErr)
	}

	var statusErr *httpclient.StatusError
	if err != nil && !errors.As(err, &statusErr) {
		return nil, model.NewProviderUnavailableError(http.StatusBadGateway,
			msg.GetMessage("weather.unavailable", w.ResourceURL(), err), err)
	}

	return &external.RawWeatherResponse{StatusCode: status, Body: body}, nil
}
