package weather

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"mausam-api/internal/models"
)

var ErrInvalidDay = errors.New("invalid forecast day")

// ForecastDateLayout renders as e.g. "Mon, 2".
const ForecastDateLayout = "Mon, 2"

// DeriveDisplay projects data onto a display record. A nil day yields the
// current conditions labelled "Today". Otherwise the record describes
// forecast day *day:
//   - temperature is the mean of max and min rounded half up, a deliberate
//     simplification and not a meteorological model
//   - humidity and wind speed are the parent's current values, a placeholder
//     since the dataset has no per-day figures for them
//   - the label is the calendar date day+1 days after now
func DeriveDisplay(data models.WeatherData, day *int, now time.Time) (models.DisplayWeather, error) {
	if day == nil {
		return current(data), nil
	}

	idx := *day
	if idx < 0 || idx >= len(data.Forecast) {
		return models.DisplayWeather{}, errors.Wrapf(ErrInvalidDay, "index %d, %s has %d days", idx, data.City, len(data.Forecast))
	}
	f := data.Forecast[idx]

	d := models.DisplayWeather{
		Label:         ForecastDateLabel(now, idx),
		DayIndex:      &idx,
		City:          data.City,
		Country:       data.Country,
		Temperature:   MeanTemperature(f.MaxTemp, f.MinTemp),
		FeelsLike:     f.FeelsLike,
		Condition:     f.Condition,
		Icon:          f.Condition.Icon(),
		Humidity:      data.Humidity,
		WindSpeed:     data.WindSpeed,
		AQI:           f.AQI,
		Precipitation: f.Precipitation,
		RainAlert:     f.RainAlert,
	}
	decorate(&d)

	return d, nil
}

func current(data models.WeatherData) models.DisplayWeather {
	d := models.DisplayWeather{
		Label:       models.TodayLabel,
		City:        data.City,
		Country:     data.Country,
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		Condition:   data.Condition,
		Icon:        data.Condition.Icon(),
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		AQI:         data.AQI,
		RainAlert:   data.RainAlert,
	}
	decorate(&d)
	return d
}

func decorate(d *models.DisplayWeather) {
	if d.FeelsLike != nil {
		d.FeelsLikePhrase = FeelsLikePhrase(d.Temperature, *d.FeelsLike)
	}
	if d.AQI != nil {
		level := ClassifyAQI(*d.AQI)
		d.AQILevel = &level
	}
}

// MeanTemperature is round-half-up((max+min)/2).
func MeanTemperature(maxTemp, minTemp int) int {
	return int(math.Floor(float64(maxTemp+minTemp)/2 + 0.5))
}

func ForecastDateLabel(now time.Time, index int) string {
	return now.AddDate(0, 0, index+1).Format(ForecastDateLayout)
}
