package weather

import (
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london    = entity.City{Name: "London", ProviderID: "2643741", TimeZoneID: "Europe/London"}
	hongKong  = entity.City{Name: "Hong Kong", ProviderID: "1819729", TimeZoneID: "Asia/Hong_Kong"}
	vancouver = entity.City{Name: "Vancouver", ProviderID: "6173331", TimeZoneID: "America/Vancouver"}
)

// dt 2019-06-26T12:00:00Z, sunrise 03:45Z, sunset 20:25Z
const londonPayload = `{
	"dt": 1561550400,
	"name": "London",
	"weather": [
		{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"},
		{"id": 300, "main": "Drizzle", "description": "light intensity drizzle", "icon": "09d"}
	],
	"main": {"temp": 300.0, "pressure": 1012, "humidity": 81},
	"sys": {"country": "GB", "sunrise": 1561520700, "sunset": 1561580700},
	"timezone": 3600,
	"id": 2643741,
	"cod": 200
}`

func TestTransform(t *testing.T) {
	t.Run("renders fields in the city zone", func(t *testing.T) {
		view, err := Transform(london, []byte(londonPayload))

		require.NoError(t, err)
		assert.Equal(t, &model.WeatherView{
			Date:                  "26/06/2019",
			CityName:              "London",
			WeatherDescription:    "Clouds - broken clouds,Drizzle - light intensity drizzle",
			TemperatureCelsius:    "26.850",
			TemperatureFahrenheit: "80.330",
			Sunrise:               "04:45 AM",
			Sunset:                "09:25 PM",
			TimeZoneID:            "Europe/London",
		}, view)
	})

	t.Run("zone changes the calendar day", func(t *testing.T) {
		hk, err := Transform(hongKong, []byte(londonPayload))
		require.NoError(t, err)
		assert.Equal(t, "26/06/2019", hk.Date)
		assert.Equal(t, "11:45 AM", hk.Sunrise)
		assert.Equal(t, "04:25 AM", hk.Sunset)
		assert.Equal(t, "Asia/Hong_Kong", hk.TimeZoneID)

		van, err := Transform(vancouver, []byte(`{"dt": 1577836800, "name": "Vancouver", "weather": [],
			"main": {"temp": 273.15}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`))
		require.NoError(t, err)
		assert.Equal(t, "31/12/2019", van.Date)
		assert.Equal(t, "08:45 PM", van.Sunrise)
		assert.Equal(t, "01:25 PM", van.Sunset)
		assert.Equal(t, "0.000", van.TemperatureCelsius)
		assert.Equal(t, "32.000", van.TemperatureFahrenheit)
	})

	t.Run("numeric strings are accepted", func(t *testing.T) {
		view, err := Transform(london, []byte(`{"dt": "1561550400", "name": "London",
			"main": {"temp": "300.0"}, "sys": {"sunrise": "1561520700", "sunset": "1561580700"}}`))

		require.NoError(t, err)
		assert.Equal(t, "26.850", view.TemperatureCelsius)
		assert.Equal(t, "80.330", view.TemperatureFahrenheit)
		assert.Equal(t, "04:45 AM", view.Sunrise)
	})

	t.Run("empty weather array yields empty description", func(t *testing.T) {
		view, err := Transform(london, []byte(`{"dt": 1561550400, "name": "London", "weather": [],
			"main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`))

		require.NoError(t, err)
		assert.Equal(t, "", view.WeatherDescription)
	})

	t.Run("city name is taken from the payload", func(t *testing.T) {
		view, err := Transform(london, []byte(`{"dt": 1561550400, "name": "City of London",
			"main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`))

		require.NoError(t, err)
		assert.Equal(t, "City of London", view.CityName)
	})
}

func TestTransform_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		kind    model.ErrorKind
		field   string
	}{
		{
			name:    "missing temp",
			payload: `{"dt": 1561550400, "main": {"pressure": 1012}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.MalformedPayload,
			field:   "main.temp",
		},
		{
			name:    "missing main object",
			payload: `{"dt": 1561550400, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.MalformedPayload,
			field:   "main.temp",
		},
		{
			name:    "null temp",
			payload: `{"dt": 1561550400, "main": {"temp": null}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.MalformedPayload,
			field:   "main.temp",
		},
		{
			name:    "non numeric temp",
			payload: `{"dt": 1561550400, "main": {"temp": "N/A"}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "main.temp",
		},
		{
			name:    "missing sys",
			payload: `{"dt": 1561550400, "main": {"temp": 300.0}}`,
			kind:    model.MalformedPayload,
			field:   "sys.sunrise",
		},
		{
			name:    "non numeric sunset",
			payload: `{"dt": 1561550400, "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": "dusk"}}`,
			kind:    model.TypeMismatch,
			field:   "sys.sunset",
		},
		{
			name:    "fractional sunrise",
			payload: `{"dt": 1561550400, "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700.5, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "sys.sunrise",
		},
		{
			name:    "hex temp",
			payload: `{"dt": 1561550400, "main": {"temp": "0x1p8"}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "main.temp",
		},
		{
			name:    "infinite temp",
			payload: `{"dt": 1561550400, "main": {"temp": "Inf"}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "main.temp",
		},
		{
			name:    "hex dt",
			payload: `{"dt": "0x5D135A40", "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "dt",
		},
		{
			name:    "dt beyond year 9999",
			payload: `{"dt": 9223372036854775, "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "dt",
		},
		{
			name:    "sunset overflowing milliseconds",
			payload: `{"dt": 1561550400, "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 9223372036854775807}}`,
			kind:    model.TypeMismatch,
			field:   "sys.sunset",
		},
		{
			name:    "numeric name",
			payload: `{"dt": 1561550400, "name": 42, "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "name",
		},
		{
			name:    "numeric weather main",
			payload: `{"dt": 1561550400, "weather": [{"main": 1}], "main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "weather",
		},
		{
			name:    "main is not an object",
			payload: `{"dt": 1561550400, "main": 300.0, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.TypeMismatch,
			field:   "main",
		},
		{
			name:    "missing dt",
			payload: `{"main": {"temp": 300.0}, "sys": {"sunrise": 1561520700, "sunset": 1561580700}}`,
			kind:    model.MalformedPayload,
			field:   "dt",
		},
		{
			name:    "not json",
			payload: `<html>maintenance</html>`,
			kind:    model.MalformedPayload,
			field:   "body",
		},
		{
			name:    "json array",
			payload: `[]`,
			kind:    model.MalformedPayload,
			field:   "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := Transform(london, []byte(tt.payload))

			assert.Nil(t, view)
			require.Error(t, err)
			assert.True(t, model.IsKind(err, tt.kind), "got %v", err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestTransform_EpochBounds(t *testing.T) {
	view, err := Transform(london, []byte(`{"dt": 253402300799, "main": {"temp": 300.0},
		"sys": {"sunrise": -62135596800, "sunset": 0}}`))

	require.NoError(t, err)
	assert.Equal(t, "31/12/9999", view.Date)
}

func TestTransform_DoesNotMutatePayload(t *testing.T) {
	payload := []byte(londonPayload)
	original := append([]byte(nil), payload...)

	_, err := Transform(london, payload)

	require.NoError(t, err)
	assert.Equal(t, original, payload)
}
