package weather

import "mausam-api/internal/models"

type aqiBucket struct {
	max   int
	level models.AQILevel
}

// Upper bounds are inclusive. Anything above the last bucket is hazardous.
var aqiBuckets = []aqiBucket{
	{50, models.AQILevel{Level: "Good", Label: "Good", Icon: "smile"}},
	{100, models.AQILevel{Level: "Moderate", Label: "Moderate", Icon: "meh"}},
	{150, models.AQILevel{Level: "UnhealthySensitive", Label: "Unhealthy for Sensitive Groups", Icon: "frown"}},
	{200, models.AQILevel{Level: "Unhealthy", Label: "Unhealthy", Icon: "alert-triangle"}},
	{300, models.AQILevel{Level: "VeryUnhealthy", Label: "Very Unhealthy", Icon: "alert-octagon"}},
}

var hazardous = models.AQILevel{Level: "Hazardous", Label: "Hazardous", Icon: "skull"}

// ClassifyAQI maps any integer to its severity bucket. Negative values land
// in Good and very large ones in Hazardous; nothing is clamped.
func ClassifyAQI(aqi int) models.AQILevel {
	for _, b := range aqiBuckets {
		if aqi <= b.max {
			return b.level
		}
	}
	return hazardous
}
