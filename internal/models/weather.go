package models

// WeatherCondition is the closed set of sky conditions the dataset uses.
type WeatherCondition string

const (
	Sunny        WeatherCondition = "Sunny"
	Cloudy       WeatherCondition = "Cloudy"
	Rainy        WeatherCondition = "Rainy"
	Windy        WeatherCondition = "Windy"
	PartlyCloudy WeatherCondition = "Partly Cloudy"
)

// Valid reports whether c is one of the known conditions.
func (c WeatherCondition) Valid() bool {
	switch c {
	case Sunny, Cloudy, Rainy, Windy, PartlyCloudy:
		return true
	}
	return false
}

// Icon returns the icon name used to draw the condition. Unknown values get the sun.
func (c WeatherCondition) Icon() string {
	switch c {
	case Cloudy:
		return "cloudy"
	case Rainy:
		return "cloud-rain"
	case Windy:
		return "wind"
	case PartlyCloudy:
		return "cloud-sun"
	default:
		return "sun"
	}
}

type DailyForecast struct {
	Day           string           `json:"day" example:"Mon"`
	Condition     WeatherCondition `json:"condition" example:"Sunny"`
	MaxTemp       int              `json:"max_temp" example:"34"`
	MinTemp       int              `json:"min_temp" example:"25"`
	FeelsLike     *int             `json:"feels_like,omitempty" example:"31"`
	AQI           *int             `json:"aqi,omitempty" example:"190"`
	Precipitation *int             `json:"precipitation,omitempty" example:"10"`
	RainAlert     string           `json:"rain_alert,omitempty"`
}

type WeatherData struct {
	City        string           `json:"city" example:"Delhi"`
	Country     string           `json:"country" example:"India"`
	Temperature int              `json:"temperature" example:"32"`
	FeelsLike   *int             `json:"feels_like,omitempty" example:"35"`
	Condition   WeatherCondition `json:"condition" example:"Sunny"`
	Humidity    int              `json:"humidity" example:"45"`
	WindSpeed   int              `json:"wind_speed" example:"10"`
	AQI         *int             `json:"aqi,omitempty" example:"185"`
	RainAlert   string           `json:"rain_alert,omitempty"`
	Forecast    []DailyForecast  `json:"forecast"`
}

// IntPtr is a small helper for the optional numeric fields.
func IntPtr(v int) *int {
	return &v
}
