package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// decimalNumber is the JSON number grammar. strconv alone would also take hex,
// underscores, "Inf" and "NaN".
var decimalNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// RawWeatherResponse is what the provider answered: any status with its body.
type RawWeatherResponse struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status is in [200,299].
func (r *RawWeatherResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// CurrentWeatherResponse holds the fields read from /data/2.5/weather.
// Numeric fields are kept raw since the provider may send numbers or numeric strings.
type CurrentWeatherResponse struct {
	Dt      FlexibleNumber     `json:"dt"`
	Name    string             `json:"name"`
	Weather []WeatherCondition `json:"weather"`
	Main    *MainConditions    `json:"main"`
	Sys     *SystemInformation `json:"sys"`
}

type WeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type MainConditions struct {
	Temp FlexibleNumber `json:"temp"`
}

type SystemInformation struct {
	Sunrise FlexibleNumber `json:"sunrise"`
	Sunset  FlexibleNumber `json:"sunset"`
}

// APIErrorResponse is the body OpenWeatherMap sends with non-2xx statuses.
// cod is a string for some errors and a number for others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// FlexibleNumber is a JSON number or a string holding one.
type FlexibleNumber []byte

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	*n = append((*n)[:0], data...)
	return nil
}

// Present reports whether the field was sent with a non-null value.
func (n FlexibleNumber) Present() bool {
	return len(n) > 0 && !bytes.Equal(n, []byte("null"))
}

func (n FlexibleNumber) text() (string, error) {
	s := string(n)
	if len(n) > 0 && n[0] == '"' {
		if err := json.Unmarshal(n, &s); err != nil {
			return "", err
		}
	}
	if !decimalNumber.MatchString(s) {
		return "", fmt.Errorf("%q is not a decimal number", s)
	}
	return s, nil
}

// Int64 parses the value as a base 10 integer.
func (n FlexibleNumber) Int64() (int64, error) {
	s, err := n.text()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

// Float64 parses the value as a floating point number.
func (n FlexibleNumber) Float64() (float64, error) {
	s, err := n.text()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
