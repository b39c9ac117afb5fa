package presenter

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mausam-api/internal/models"
	"mausam-api/internal/services/view"
)

func sampleView() view.View {
	aqi := 185
	feels := 35
	level := models.AQILevel{Level: "Unhealthy", Label: "Unhealthy", Icon: "alert-triangle"}
	return view.View{
		Display: models.DisplayWeather{
			Label: "Today", City: "Delhi", Country: "India", Temperature: 32,
			FeelsLike: &feels, FeelsLikePhrase: "much hotter",
			Condition: models.Sunny, Humidity: 45, WindSpeed: 10,
			AQI: &aqi, AQILevel: &level,
		},
		Forecast: []view.ForecastCard{
			{Index: 0, Date: "Tue, 20", Condition: models.Sunny, MaxTemp: 34, MinTemp: 25, AQI: models.IntPtr(190)},
			{Index: 1, Date: "Wed, 21", Condition: models.PartlyCloudy, MaxTemp: 33, MinTemp: 26, Selected: true},
		},
		Favorites:   []string{"Delhi", "Mumbai"},
		Explanation: "Hot and hazy.",
	}
}

func TestRenderCard(t *testing.T) {
	out, err := RenderCard(sampleView())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Delhi, India | Today\n"))
	assert.Contains(t, out, "Sunny  32°C (feels like 35°C, much hotter)")
	assert.Contains(t, out, "Humidity  45%")
	assert.Contains(t, out, "Wind      10 km/h")
	assert.Contains(t, out, "AQI       185 Unhealthy")
	assert.Contains(t, out, "Favorites: Delhi, Mumbai")
	assert.Contains(t, out, "Hot and hazy.")
	assert.NotContains(t, out, "Alert:")
}

func TestRenderCard_ForecastColumnsAlign(t *testing.T) {
	out, err := RenderCard(sampleView())
	require.NoError(t, err)

	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "°/") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[1], "> "), "selected day is marked")

	col := func(line string) int {
		idx := strings.Index(line, "°/")
		return runewidth.StringWidth(line[:idx])
	}
	assert.Equal(t, col(rows[0]), col(rows[1]))
	assert.True(t, strings.HasSuffix(rows[1], "-"), "missing AQI renders as dash")
}

func TestRenderCard_OptionalFields(t *testing.T) {
	v := sampleView()
	v.Display.AQI = nil
	v.Display.AQILevel = nil
	v.Display.FeelsLike = nil
	v.Display.RainAlert = "Heavy rain."
	v.Favorites = nil
	v.Explanation = ""

	out, err := RenderCard(v)
	require.NoError(t, err)

	assert.NotContains(t, out, "feels like")
	assert.NotContains(t, out, "AQI       ")
	assert.Contains(t, out, "Alert: Heavy rain.")
	assert.NotContains(t, out, "Favorites:")
}
