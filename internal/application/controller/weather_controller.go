package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/application/view"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

const weatherRouteName = "weather"

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/", controller.Index)
	controller.api.GET("/weather", controller.GetWeather).Name = weatherRouteName
}

// Index godoc
// @Summary City selection form
// @Description Render the form listing every supported city
// @Tags weather
// @Produce html
// @Success 200 {string} string "index page"
// @Router / [get]
func (controller *WeatherController) Index(c echo.Context) error {
	return c.Render(http.StatusOK, view.IndexPage, view.IndexData{
		Cities: controller.useCase.ListCities(),
		Action: c.Echo().Reverse(weatherRouteName),
	})
}

// GetWeather godoc
// @Summary Current weather for a city
// @Description Fetch the current weather of a supported city and render it with local date, temperatures and sun times
// @Tags weather
// @Produce html
// @Param city query string true "City name" Enums(London, Hong Kong, Vancouver)
// @Success 200 {string} string "weather page"
// @Failure 400 {string} string "unsupported or missing city"
// @Failure 422 {string} string "provider payload could not be read"
// @Failure 502 {string} string "provider unreachable"
// @Failure 504 {string} string "provider timed out"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	// a missing city is looked up as "" and reported like any unsupported name
	weatherView, err := controller.useCase.GetWeather(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return RenderError(c, err)
	}
	return c.Render(http.StatusOK, view.WeatherPage, weatherView)
}

// RenderError writes err as the error page. *model.WeatherError and *echo.HTTPError keep
// their status, anything else is a 500.
func RenderError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var weatherErr *model.WeatherError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &weatherErr):
		status = weatherErr.StatusCode
		message = weatherErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = http.StatusText(status)
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
	}

	return c.Render(status, view.ErrorPage, model.NewErrorRecord(status, message, c.Request().URL.Path))
}
