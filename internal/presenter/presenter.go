package presenter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"

	"mausam-api/internal/models"
	"mausam-api/internal/services/view"
)

var conditionEmoji = map[models.WeatherCondition]string{
	models.Sunny:        "☀️",
	models.Cloudy:       "☁️",
	models.Rainy:        "🌧️",
	models.Windy:        "💨",
	models.PartlyCloudy: "⛅",
}

const cardTpl = `{{.Display.City}}, {{.Display.Country}} | {{.Display.Label}}
{{emoji .Display.Condition}} {{.Display.Condition}}  {{.Display.Temperature}}°C{{with .Display.FeelsLike}} (feels like {{.}}°C, {{$.Display.FeelsLikePhrase}}){{end}}
{{pad "Humidity" 10}}{{.Display.Humidity}}%
{{pad "Wind" 10}}{{.Display.WindSpeed}} km/h
{{- with .Display.AQI}}
{{pad "AQI" 10}}{{.}} {{$.Display.AQILevel.Label}}
{{- end}}
{{- with .Display.Precipitation}}
{{pad "Rain" 10}}{{.}}%
{{- end}}
{{- with .Display.RainAlert}}
Alert: {{.}}
{{- end}}

{{pad "" 2}}{{pad "Date" 9}}{{pad "Condition" 18}}{{pad "Max/Min" 10}}AQI
{{- range .Forecast}}
{{if .Selected}}> {{else}}  {{end}}{{pad .Date 9}}{{pad (printf "%s %s" (emoji .Condition) .Condition) 18}}{{pad (printf "%d°/%d°" .MaxTemp .MinTemp) 10}}{{with .AQI}}{{.}}{{else}}-{{end}}
{{- end}}
{{- if .Favorites}}

Favorites: {{join .Favorites}}
{{- end}}
{{- with .Explanation}}

{{.}}
{{- end}}
`

var cardTemplate = template.Must(template.New("card").Funcs(template.FuncMap{
	"emoji": func(c models.WeatherCondition) string {
		if e, ok := conditionEmoji[c]; ok {
			return e
		}
		return conditionEmoji[models.Sunny]
	},
	// pad fills s to w terminal cells so emoji and ° keep columns aligned
	"pad": func(s string, w int) string {
		return runewidth.FillRight(s, w)
	},
	"join": func(names []string) string {
		return strings.Join(names, ", ")
	},
}).Parse(cardTpl))

// RenderCard draws a view as plain text.
func RenderCard(v view.View) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render card: %w", err)
	}
	return buf.String(), nil
}
