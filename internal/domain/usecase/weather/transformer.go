package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/msg"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "03:04 PM"

	absoluteZeroCelsius = 273.15

	// epochs must render as a four digit year: 0001-01-01 to 9999-12-31 UTC
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// Transform turns a 2xx body of the current weather API into display strings,
// rendering dates and times in the city's zone. It fails with a MalformedPayload
// error when a required field is absent and a TypeMismatch error when a numeric
// field cannot be parsed.
func Transform(city entity.City, payload []byte) (*model.WeatherView, error) {
	location, err := time.LoadLocation(city.TimeZoneID)
	if err != nil {
		return nil, fmt.Errorf("city %s has an invalid time zone: %w", city.Name, err)
	}

	var response external.CurrentWeatherResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, model.NewTypeMismatchError(msg.GetMessage("weather.type-mismatch", typeErr.Field), err)
		}
		return nil, model.NewMalformedPayloadError(msg.GetMessage("weather.malformed", "body"), err)
	}

	var sys external.SystemInformation
	if response.Sys != nil {
		sys = *response.Sys
	}
	var conditions external.MainConditions
	if response.Main != nil {
		conditions = *response.Main
	}

	dt, err := epochMillis("dt", response.Dt)
	if err != nil {
		return nil, err
	}
	sunrise, err := epochMillis("sys.sunrise", sys.Sunrise)
	if err != nil {
		return nil, err
	}
	sunset, err := epochMillis("sys.sunset", sys.Sunset)
	if err != nil {
		return nil, err
	}

	kelvin, err := temperature("main.temp", conditions.Temp)
	if err != nil {
		return nil, err
	}
	celsius := kelvin - absoluteZeroCelsius
	fahrenheit := celsius*9/5 + 32

	return &model.WeatherView{
		Date:                  time.UnixMilli(dt).In(location).Format(dateLayout),
		CityName:              response.Name,
		WeatherDescription:    describe(response.Weather),
		TemperatureCelsius:    fmt.Sprintf("%.3f", celsius),
		TemperatureFahrenheit: fmt.Sprintf("%.3f", fahrenheit),
		Sunrise:               time.UnixMilli(sunrise).In(location).Format(timeLayout),
		Sunset:                time.UnixMilli(sunset).In(location).Format(timeLayout),
		TimeZoneID:            city.TimeZoneID,
	}, nil
}

// epochMillis reads an epoch seconds field and converts it to milliseconds.
func epochMillis(field string, value external.FlexibleNumber) (int64, error) {
	if !value.Present() {
		return 0, model.NewMalformedPayloadError(msg.GetMessage("weather.malformed", field), nil)
	}

	seconds, err := value.Int64()
	if err != nil {
		return 0, model.NewTypeMismatchError(msg.GetMessage("weather.type-mismatch", field), err)
	}
	if seconds < minEpochSeconds || seconds > maxEpochSeconds {
		return 0, model.NewTypeMismatchError(msg.GetMessage("weather.type-mismatch", field),
			fmt.Errorf("epoch %d is out of range", seconds))
	}
	return seconds * 1000, nil
}

func temperature(field string, value external.FlexibleNumber) (float64, error) {
	if !value.Present() {
		return 0, model.NewMalformedPayloadError(msg.GetMessage("weather.malformed", field), nil)
	}

	kelvin, err := value.Float64()
	if err != nil {
		return 0, model.NewTypeMismatchError(msg.GetMessage("weather.type-mismatch", field), err)
	}
	if math.IsNaN(kelvin) || math.IsInf(kelvin, 0) {
		return 0, model.NewTypeMismatchError(msg.GetMessage("weather.type-mismatch", field), nil)
	}
	return kelvin, nil
}

// describe joins every condition as "<main> - <description>" in payload order.
func describe(conditions []external.WeatherCondition) string {
	parts := make([]string, 0, len(conditions))
	for _, condition := range conditions {
		parts = append(parts, condition.Main+" - "+condition.Description)
	}
	return strings.Join(parts, ",")
}
