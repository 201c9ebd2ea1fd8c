package registry

import (
	"testing"

	"go-weather/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityRegistry_Lookup(t *testing.T) {
	reg, err := NewCityRegistry(DefaultCities())
	require.NoError(t, err)

	t.Run("registered cities", func(t *testing.T) {
		expected := map[string][2]string{
			"London":    {"2643741", "Europe/London"},
			"Hong Kong": {"1819729", "Asia/Hong_Kong"},
			"Vancouver": {"6173331", "America/Vancouver"},
		}

		for name, ids := range expected {
			city, ok := reg.Lookup(name)
			require.True(t, ok, name)
			assert.Equal(t, name, city.Name)
			assert.Equal(t, ids[0], city.ProviderID)
			assert.Equal(t, ids[1], city.TimeZoneID)
		}
	})

	t.Run("unregistered and differently cased names", func(t *testing.T) {
		for _, name := range []string{"Atlantis", "london", "LONDON", " London", ""} {
			_, ok := reg.Lookup(name)
			assert.False(t, ok, name)
		}
	})

	t.Run("names keep registration order", func(t *testing.T) {
		assert.Equal(t, []string{"London", "Hong Kong", "Vancouver"}, reg.Names())
	})

	t.Run("names cannot mutate the registry", func(t *testing.T) {
		names := reg.Names()
		names[0] = "Atlantis"

		assert.Equal(t, "London", reg.Names()[0])
		_, ok := reg.Lookup("Atlantis")
		assert.False(t, ok)
	})
}

func TestNewCityRegistry_Validation(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewCityRegistry(nil)
		assert.Error(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewCityRegistry([]entity.City{
			{Name: "London", ProviderID: "1", TimeZoneID: "Europe/London"},
			{Name: "London", ProviderID: "2", TimeZoneID: "Europe/London"},
		})
		assert.ErrorContains(t, err, "registered twice")
	})

	t.Run("missing provider id", func(t *testing.T) {
		_, err := NewCityRegistry([]entity.City{{Name: "London", TimeZoneID: "Europe/London"}})
		assert.ErrorContains(t, err, "required")
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := NewCityRegistry([]entity.City{{Name: "Atlantis", ProviderID: "1", TimeZoneID: "Ocean/Atlantis"}})
		assert.ErrorContains(t, err, "invalid time zone")
	})
}
