package models

// TodayLabel is the day label of the current-conditions display record.
const TodayLabel = "Today"

// AQILevel is the severity bucket of an AQI value.
type AQILevel struct {
	Level string `json:"level" example:"Moderate"`
	Label string `json:"label" example:"Moderate"`
	Icon  string `json:"icon" example:"meh"`
}

// DisplayWeather is the flat record a view renders. It is derived from a
// WeatherData and an optional forecast day and never mutated in place.
type DisplayWeather struct {
	Label           string           `json:"label" example:"Today"`
	DayIndex        *int             `json:"day_index,omitempty"`
	City            string           `json:"city" example:"Delhi"`
	Country         string           `json:"country" example:"India"`
	Temperature     int              `json:"temperature" example:"32"`
	FeelsLike       *int             `json:"feels_like,omitempty" example:"35"`
	FeelsLikePhrase string           `json:"feels_like_phrase,omitempty" example:"much hotter"`
	Condition       WeatherCondition `json:"condition" example:"Sunny"`
	Icon            string           `json:"icon" example:"sun"`
	Humidity        int              `json:"humidity" example:"45"`
	WindSpeed       int              `json:"wind_speed" example:"10"`
	AQI             *int             `json:"aqi,omitempty" example:"185"`
	AQILevel        *AQILevel        `json:"aqi_level,omitempty"`
	Precipitation   *int             `json:"precipitation,omitempty"`
	RainAlert       string           `json:"rain_alert,omitempty"`
}
