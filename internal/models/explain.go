package models

// ExplainInput is the request payload of the weather explanation call.
type ExplainInput struct {
	Location         string  `json:"location"`
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"windSpeed"`
	WeatherCondition string  `json:"weatherCondition"`
}

// ExplainOutput is the response payload of the weather explanation call.
type ExplainOutput struct {
	Explanation string `json:"explanation"`
}

// NewExplainInput projects a display record onto the explanation request.
func NewExplainInput(d DisplayWeather) ExplainInput {
	return ExplainInput{
		Location:         d.City,
		Temperature:      float64(d.Temperature),
		Humidity:         float64(d.Humidity),
		WindSpeed:        float64(d.WindSpeed),
		WeatherCondition: string(d.Condition),
	}
}
