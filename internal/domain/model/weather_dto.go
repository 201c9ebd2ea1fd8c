package model

// WeatherView is the display-ready result of one successful weather lookup.
type WeatherView struct {
	Date                  string `json:"date"`
	CityName              string `json:"cityName"`
	WeatherDescription    string `json:"weatherDescription"`
	TemperatureCelsius    string `json:"temperatureCelsius"`
	TemperatureFahrenheit string `json:"temperatureFahrenheit"`
	Sunrise               string `json:"sunrise"`
	Sunset                string `json:"sunset"`
	TimeZoneID            string `json:"timeZoneId"`
}
