package weather

import (
	"strings"

	"mausam-api/internal/models"
)

// FindCity returns the record whose city equals term, ignoring case.
func FindCity(cities []models.WeatherData, term string) (models.WeatherData, bool) {
	needle := strings.ToLower(term)
	for _, c := range cities {
		if strings.ToLower(c.City) == needle {
			return c, true
		}
	}
	return models.WeatherData{}, false
}

// SuggestCities returns, in dataset order, every record whose city starts
// with query, ignoring case. An empty query suggests nothing.
func SuggestCities(cities []models.WeatherData, query string) []models.WeatherData {
	out := []models.WeatherData{}
	if query == "" {
		return out
	}

	prefix := strings.ToLower(query)
	for _, c := range cities {
		if strings.HasPrefix(strings.ToLower(c.City), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// SameCity is the one equality used for city names everywhere.
func SameCity(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
