package registry

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"go-weather/internal/domain/entity"
)

// CityRegistry is the fixed table of supported cities. It is built once at startup
// and only read afterwards, so it is safe for concurrent use.
type CityRegistry interface {
	// Lookup finds a city by exact, case-sensitive display name
	Lookup(name string) (entity.City, bool)

	// Names returns the display names in registration order
	Names() []string
}

type cityRegistry struct {
	names  []string
	cities map[string]entity.City
}

// DefaultCities are the reference entries used when no cities are configured.
func DefaultCities() []entity.City {
	return []entity.City{
		{Name: "London", ProviderID: "2643741", TimeZoneID: "Europe/London"},
		{Name: "Hong Kong", ProviderID: "1819729", TimeZoneID: "Asia/Hong_Kong"},
		{Name: "Vancouver", ProviderID: "6173331", TimeZoneID: "America/Vancouver"},
	}
}

// NewCityRegistry validates the entries and freezes them. Names must be unique and
// every zone must be a loadable IANA zone.
func NewCityRegistry(cities []entity.City) (CityRegistry, error) {
	if len(cities) == 0 {
		return nil, errors.New("at least one city is required")
	}

	reg := &cityRegistry{
		names:  make([]string, 0, len(cities)),
		cities: make(map[string]entity.City, len(cities)),
	}

	for _, city := range cities {
		if city.Name == "" || city.ProviderID == "" || city.TimeZoneID == "" {
			return nil, fmt.Errorf("city %q: name, provider id and time zone are required", city.Name)
		}
		if _, exists := reg.cities[city.Name]; exists {
			return nil, fmt.Errorf("city %q is registered twice", city.Name)
		}
		if _, err := time.LoadLocation(city.TimeZoneID); err != nil {
			return nil, fmt.Errorf("city %q: invalid time zone %q: %w", city.Name, city.TimeZoneID, err)
		}

		reg.names = append(reg.names, city.Name)
		reg.cities[city.Name] = city
	}

	return reg, nil
}

func (r *cityRegistry) Lookup(name string) (entity.City, bool) {
	city, ok := r.cities[name]
	return city, ok
}

func (r *cityRegistry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
