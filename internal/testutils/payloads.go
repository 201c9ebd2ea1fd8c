package testutils

// LondonPayload is a 2xx body of the current weather API: 300K, dt 2019-06-26T12:00:00Z.
const LondonPayload = `{
	"coord": {"lon": -0.13, "lat": 51.51},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
	"base": "stations",
	"main": {"temp": 300.0, "pressure": 1012, "humidity": 81, "temp_min": 298.7, "temp_max": 301.4},
	"visibility": 10000,
	"wind": {"speed": 4.1, "deg": 80},
	"clouds": {"all": 75},
	"dt": 1561550400,
	"sys": {"type": 1, "id": 1414, "country": "GB", "sunrise": 1561520700, "sunset": 1561580700},
	"timezone": 3600,
	"id": 2643741,
	"name": "London",
	"cod": 200
}`
