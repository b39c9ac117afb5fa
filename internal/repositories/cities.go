package repositories

import "mausam-api/internal/models"

// CityRepository exposes the ordered weather dataset.
type CityRepository interface {
	Name() string
	Cities() []models.WeatherData
}

type StaticCityRepository struct {
	cities []models.WeatherData
}

// NewStaticCityRepository serves the compiled-in dataset.
func NewStaticCityRepository() *StaticCityRepository {
	return &StaticCityRepository{cities: indianCitiesWeather}
}

func (s *StaticCityRepository) Name() string {
	return "static"
}

// Cities returns a copy of the dataset in its declared order.
func (s *StaticCityRepository) Cities() []models.WeatherData {
	out := make([]models.WeatherData, len(s.cities))
	for i, c := range s.cities {
		c.Forecast = append([]models.DailyForecast(nil), c.Forecast...)
		out[i] = c
	}
	return out
}
