// Package docs registers the OpenAPI document served by the swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/aqi/{value}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["AQI"],
                "summary": "Classify an AQI value",
                "parameters": [
                    {"type": "integer", "example": 120, "description": "AQI value", "name": "value", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AQILevel"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/cities": {
            "get": {
                "description": "Returns every city whose name starts with q, ignoring case. An empty q returns an empty list.",
                "produces": ["application/json"],
                "tags": ["Cities"],
                "summary": "Autocomplete city names",
                "parameters": [
                    {"type": "string", "example": "de", "description": "City name prefix", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.WeatherData"}}}
                }
            }
        },
        "/cities/{name}": {
            "get": {
                "description": "Exact, case-insensitive lookup of a city's weather record",
                "produces": ["application/json"],
                "tags": ["Cities"],
                "summary": "Get a city",
                "parameters": [
                    {"type": "string", "example": "delhi", "description": "City name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.WeatherData"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Starts a view on the default city with favorites loaded from storage",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Open a view",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/view.View"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "description": "Returns the display record, forecast strip, favorites and pending notifications. Notifications are drained.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Render a view",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.View"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Close a view",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/card": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Sessions"],
                "summary": "Render a view as text",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/day": {
            "put": {
                "description": "index 0..2 shows that forecast day, null returns to today",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Select a forecast day",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Day index", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SelectDayRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/explain": {
            "post": {
                "description": "Sends the current display record to the generative text service. One call at a time per view. 409 when another call is in flight or the city or day changed before the answer arrived.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Explain the displayed weather",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ExplainResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/favorites/{city}": {
            "post": {
                "description": "Adds the city when absent, removes it when present. Persisted on every change.",
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Toggle a favorite city",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ToggleFavoriteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/sessions/{id}/search": {
            "post": {
                "description": "Shows the matching city. A miss leaves the view unchanged and queues one not_found notification.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sessions"],
                "summary": "Search for a city",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "City not found"}}
        },
        "http.ExplainResponse": {
            "type": "object",
            "properties": {"explanation": {"type": "string", "example": "Hot and hazy afternoon, stay hydrated."}}
        },
        "http.SearchRequest": {
            "type": "object",
            "properties": {"term": {"type": "string", "example": "Mumbai"}}
        },
        "http.SelectDayRequest": {
            "type": "object",
            "properties": {"index": {"type": "integer", "example": 0}}
        },
        "http.ToggleFavoriteResponse": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "Delhi"},
                "favorite": {"type": "boolean", "example": true},
                "view": {"$ref": "#/definitions/view.View"}
            }
        },
        "models.AQILevel": {
            "type": "object",
            "properties": {
                "icon": {"type": "string", "example": "meh"},
                "label": {"type": "string", "example": "Moderate"},
                "level": {"type": "string", "example": "Moderate"}
            }
        },
        "models.DailyForecast": {
            "type": "object",
            "properties": {
                "aqi": {"type": "integer", "example": 190},
                "condition": {"type": "string", "example": "Sunny"},
                "day": {"type": "string", "example": "Mon"},
                "feels_like": {"type": "integer", "example": 31},
                "max_temp": {"type": "integer", "example": 34},
                "min_temp": {"type": "integer", "example": 25},
                "precipitation": {"type": "integer", "example": 10},
                "rain_alert": {"type": "string"}
            }
        },
        "models.DisplayWeather": {
            "type": "object",
            "properties": {
                "aqi": {"type": "integer", "example": 185},
                "aqi_level": {"$ref": "#/definitions/models.AQILevel"},
                "city": {"type": "string", "example": "Delhi"},
                "condition": {"type": "string", "example": "Sunny"},
                "country": {"type": "string", "example": "India"},
                "day_index": {"type": "integer"},
                "feels_like": {"type": "integer", "example": 35},
                "feels_like_phrase": {"type": "string", "example": "much hotter"},
                "humidity": {"type": "integer", "example": 45},
                "icon": {"type": "string", "example": "sun"},
                "label": {"type": "string", "example": "Today"},
                "precipitation": {"type": "integer"},
                "rain_alert": {"type": "string"},
                "temperature": {"type": "integer", "example": 32},
                "wind_speed": {"type": "integer", "example": 10}
            }
        },
        "models.Notification": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "kind": {"type": "string", "example": "not_found"},
                "title": {"type": "string", "example": "City not found"}
            }
        },
        "models.WeatherData": {
            "type": "object",
            "properties": {
                "aqi": {"type": "integer", "example": 185},
                "city": {"type": "string", "example": "Delhi"},
                "condition": {"type": "string", "example": "Sunny"},
                "country": {"type": "string", "example": "India"},
                "feels_like": {"type": "integer", "example": 35},
                "forecast": {"type": "array", "items": {"$ref": "#/definitions/models.DailyForecast"}},
                "humidity": {"type": "integer", "example": 45},
                "rain_alert": {"type": "string"},
                "temperature": {"type": "integer", "example": 32},
                "wind_speed": {"type": "integer", "example": 10}
            }
        },
        "view.ForecastCard": {
            "type": "object",
            "properties": {
                "aqi": {"type": "integer"},
                "condition": {"type": "string"},
                "date": {"type": "string", "example": "Tue, 20"},
                "day": {"type": "string", "example": "Mon"},
                "icon": {"type": "string"},
                "index": {"type": "integer"},
                "max_temp": {"type": "integer"},
                "min_temp": {"type": "integer"},
                "precipitation": {"type": "integer"},
                "selected": {"type": "boolean"}
            }
        },
        "view.View": {
            "type": "object",
            "properties": {
                "display": {"$ref": "#/definitions/models.DisplayWeather"},
                "explanation": {"type": "string"},
                "favorites": {"type": "array", "items": {"type": "string"}},
                "forecast": {"type": "array", "items": {"$ref": "#/definitions/view.ForecastCard"}},
                "is_favorite": {"type": "boolean"},
                "loading": {"type": "boolean"},
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/models.Notification"}},
                "search_term": {"type": "string"},
                "session_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Mausam API",
	Description:      "Weather for Indian cities with forecast-day views, favorites and AI explanations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
