package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "mausam-api/docs"
	"mausam-api/internal/services/view"
	"mausam-api/internal/services/weather"
	"mausam-api/pkg/logger"
)

type routes struct {
	weather  *weather.WeatherService
	sessions *view.Registry
	l        *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	sessions *view.Registry,
	l *logger.Logger,
) {
	r := &routes{
		weather:  weatherService,
		sessions: sessions,
		l:        l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	// API routes
	app.Get("/cities", r.handleSuggest)
	app.Get("/cities/:name", r.handleCity)
	app.Get("/aqi/:value", r.handleAQI)

	s := app.Group("/sessions")
	s.Post("/", r.handleCreateSession)
	s.Get("/:id", r.handleGetSession)
	s.Delete("/:id", r.handleDeleteSession)
	s.Get("/:id/card", r.handleCard)
	s.Post("/:id/search", r.handleSearch)
	s.Put("/:id/day", r.handleSelectDay)
	s.Post("/:id/favorites/:city", r.handleToggleFavorite)
	s.Post("/:id/explain", r.handleExplain)
}
