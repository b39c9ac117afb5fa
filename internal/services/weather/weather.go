package weather

import (
	"time"

	"github.com/pkg/errors"

	"mausam-api/internal/models"
	"mausam-api/internal/repositories"
	"mausam-api/pkg/logger"
)

var ErrCityNotFound = errors.New("city not found")

// WeatherService answers lookups against the city dataset.
type WeatherService struct {
	repo repositories.CityRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.CityRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

func (s *WeatherService) Cities() []models.WeatherData {
	return s.repo.Cities()
}

// City returns the record for term, or ErrCityNotFound.
func (s *WeatherService) City(term string) (models.WeatherData, error) {
	city, ok := FindCity(s.repo.Cities(), term)
	if !ok {
		s.l.Debug("city lookup missed", map[string]any{"term": term, "repo": s.repo.Name()})
		return models.WeatherData{}, errors.Wrapf(ErrCityNotFound, "%q", term)
	}
	return city, nil
}

func (s *WeatherService) Suggest(query string) []models.WeatherData {
	return SuggestCities(s.repo.Cities(), query)
}

func (s *WeatherService) Display(data models.WeatherData, day *int, now time.Time) (models.DisplayWeather, error) {
	return DeriveDisplay(data, day, now)
}
