package view

import (
	"mausam-api/internal/models"
)

const (
	notFoundTitle       = "City not found"
	notFoundDescription = "Weather data for \"%s\" is not available. Please try another Indian city."
	explainErrorTitle   = "AI Assistant Error"
	explainErrorDesc    = "Could not generate weather insights. Please try again later."
)

// State is everything one view instance knows. It is only changed through
// the Session transitions.
type State struct {
	City        models.WeatherData
	SelectedDay *int
	SearchTerm  string
	Favorites   *Favorites
	Explanation string
	Loading     bool

	notifications []models.Notification
	// bumped whenever the displayed record changes so late explanations
	// for a previous record are dropped
	epoch uint64
}

func (s *State) notify(n models.Notification) {
	s.notifications = append(s.notifications, n)
}

func (s *State) drain() []models.Notification {
	out := s.notifications
	s.notifications = nil
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

// ForecastCard is one entry of the forecast strip.
type ForecastCard struct {
	Index         int                     `json:"index"`
	Day           string                  `json:"day" example:"Mon"`
	Date          string                  `json:"date" example:"Tue, 20"`
	Condition     models.WeatherCondition `json:"condition"`
	Icon          string                  `json:"icon"`
	MaxTemp       int                     `json:"max_temp"`
	MinTemp       int                     `json:"min_temp"`
	AQI           *int                    `json:"aqi,omitempty"`
	Precipitation *int                    `json:"precipitation,omitempty"`
	Selected      bool                    `json:"selected"`
}

// View is the rendered snapshot handed to clients.
type View struct {
	SessionID     string                `json:"session_id"`
	Display       models.DisplayWeather `json:"display"`
	Forecast      []ForecastCard        `json:"forecast"`
	Favorites     []string              `json:"favorites"`
	IsFavorite    bool                  `json:"is_favorite"`
	SearchTerm    string                `json:"search_term"`
	Explanation   string                `json:"explanation,omitempty"`
	Loading       bool                  `json:"loading"`
	Notifications []models.Notification `json:"notifications"`
}
