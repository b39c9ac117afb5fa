package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCityRepository_DatasetShape(t *testing.T) {
	cities := NewStaticCityRepository().Cities()
	require.Len(t, cities, 5)

	seen := map[string]bool{}
	for _, c := range cities {
		key := strings.ToLower(c.City)
		assert.False(t, seen[key], "duplicate city %s", c.City)
		seen[key] = true

		assert.Equal(t, "India", c.Country)
		assert.True(t, c.Condition.Valid(), c.City)
		require.Len(t, c.Forecast, 3, c.City)
		for _, d := range c.Forecast {
			assert.True(t, d.Condition.Valid(), "%s %s", c.City, d.Day)
			assert.GreaterOrEqual(t, d.MaxTemp, d.MinTemp, "%s %s", c.City, d.Day)
		}
	}
	assert.Equal(t, "Delhi", cities[0].City)
}

func TestStaticCityRepository_CitiesReturnsCopy(t *testing.T) {
	repo := NewStaticCityRepository()

	first := repo.Cities()
	first[0].City = "Changed"
	first[0].Forecast[0].MaxTemp = 99

	second := repo.Cities()
	assert.Equal(t, "Delhi", second[0].City)
	assert.Equal(t, 34, second[0].Forecast[0].MaxTemp)
}
