package repositories

import m "mausam-api/internal/models"

var ip = m.IntPtr

// indianCitiesWeather is the compiled-in dataset. City names are unique
// under case-insensitive comparison.
var indianCitiesWeather = []m.WeatherData{
	{
		City:        "Delhi",
		Country:     "India",
		Temperature: 32,
		FeelsLike:   ip(35),
		Condition:   m.Sunny,
		Humidity:    45,
		WindSpeed:   10,
		AQI:         ip(185),
		Forecast: []m.DailyForecast{
			{Day: "Mon", Condition: m.Sunny, MaxTemp: 34, MinTemp: 25, FeelsLike: ip(36), AQI: ip(190), Precipitation: ip(5)},
			{Day: "Tue", Condition: m.PartlyCloudy, MaxTemp: 33, MinTemp: 26, FeelsLike: ip(34), AQI: ip(175), Precipitation: ip(10)},
			{Day: "Wed", Condition: m.Cloudy, MaxTemp: 31, MinTemp: 24, FeelsLike: ip(31), AQI: ip(160), Precipitation: ip(20)},
		},
	},
	{
		City:        "Mumbai",
		Country:     "India",
		Temperature: 29,
		FeelsLike:   ip(33),
		Condition:   m.Rainy,
		Humidity:    88,
		WindSpeed:   25,
		AQI:         ip(95),
		RainAlert:   "Heavy rain expected through the evening. Avoid low-lying areas.",
		Forecast: []m.DailyForecast{
			{Day: "Mon", Condition: m.Rainy, MaxTemp: 30, MinTemp: 26, FeelsLike: ip(33), AQI: ip(100), Precipitation: ip(90), RainAlert: "Very heavy rainfall likely."},
			{Day: "Tue", Condition: m.Rainy, MaxTemp: 29, MinTemp: 25, FeelsLike: ip(31), AQI: ip(90), Precipitation: ip(80), RainAlert: "Heavy rainfall likely."},
			{Day: "Wed", Condition: m.Cloudy, MaxTemp: 30, MinTemp: 26, FeelsLike: ip(29), AQI: ip(85), Precipitation: ip(40)},
		},
	},
	{
		City:        "Bangalore",
		Country:     "India",
		Temperature: 24,
		FeelsLike:   ip(24),
		Condition:   m.Cloudy,
		Humidity:    75,
		WindSpeed:   15,
		AQI:         ip(65),
		Forecast: []m.DailyForecast{
			{Day: "Mon", Condition: m.PartlyCloudy, MaxTemp: 26, MinTemp: 20, FeelsLike: ip(22), AQI: ip(70), Precipitation: ip(30)},
			{Day: "Tue", Condition: m.Rainy, MaxTemp: 24, MinTemp: 20, FeelsLike: ip(21), AQI: ip(60), Precipitation: ip(70)},
			{Day: "Wed", Condition: m.Cloudy, MaxTemp: 25, MinTemp: 21, FeelsLike: ip(23), AQI: ip(68), Precipitation: ip(35)},
		},
	},
	{
		City:        "Chennai",
		Country:     "India",
		Temperature: 31,
		FeelsLike:   ip(36),
		Condition:   m.PartlyCloudy,
		Humidity:    70,
		WindSpeed:   18,
		AQI:         ip(110),
		Forecast: []m.DailyForecast{
			{Day: "Mon", Condition: m.PartlyCloudy, MaxTemp: 33, MinTemp: 27, FeelsLike: ip(37), AQI: ip(115), Precipitation: ip(15)},
			{Day: "Tue", Condition: m.Sunny, MaxTemp: 34, MinTemp: 28, FeelsLike: ip(39), AQI: ip(120), Precipitation: ip(5)},
			{Day: "Wed", Condition: m.PartlyCloudy, MaxTemp: 33, MinTemp: 27, FeelsLike: ip(36), AQI: ip(105), Precipitation: ip(20)},
		},
	},
	{
		City:        "Kolkata",
		Country:     "India",
		Temperature: 30,
		FeelsLike:   ip(34),
		Condition:   m.Cloudy,
		Humidity:    82,
		WindSpeed:   12,
		AQI:         ip(130),
		Forecast: []m.DailyForecast{
			{Day: "Mon", Condition: m.Rainy, MaxTemp: 31, MinTemp: 26, FeelsLike: ip(33), AQI: ip(135), Precipitation: ip(75), RainAlert: "Thunderstorms with heavy rain in the afternoon."},
			{Day: "Tue", Condition: m.Cloudy, MaxTemp: 30, MinTemp: 25, FeelsLike: ip(31), AQI: ip(125), Precipitation: ip(40)},
			{Day: "Wed", Condition: m.Rainy, MaxTemp: 29, MinTemp: 25, FeelsLike: ip(30), AQI: ip(120), Precipitation: ip(65)},
		},
	},
}
