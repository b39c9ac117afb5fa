package http

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mausam-api/internal/presenter"
	"mausam-api/internal/services/view"
	"mausam-api/internal/services/weather"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City not found"`
}

// SearchRequest is the body of a search submit
type SearchRequest struct {
	Term string `json:"term" example:"Mumbai"`
}

// SelectDayRequest selects a forecast day; a null index returns to today
type SelectDayRequest struct {
	Index *int `json:"index" example:"0"`
}

// ToggleFavoriteResponse reports membership after a toggle
type ToggleFavoriteResponse struct {
	City     string    `json:"city" example:"Delhi"`
	Favorite bool      `json:"favorite" example:"true"`
	View     view.View `json:"view"`
}

// ExplainResponse carries the generated explanation
type ExplainResponse struct {
	Explanation string `json:"explanation" example:"Hot and hazy afternoon, stay hydrated."`
}

// handleSuggest godoc
// @Summary Autocomplete city names
// @Description Returns every city whose name starts with q, ignoring case. An empty q returns an empty list.
// @Tags Cities
// @Produce json
// @Param q query string false "City name prefix" example(de)
// @Success 200 {array} models.WeatherData
// @Router /cities [get]
func (r *routes) handleSuggest(c *fiber.Ctx) error {
	return c.JSON(r.weather.Suggest(c.Query("q")))
}

// handleCity godoc
// @Summary Get a city
// @Description Exact, case-insensitive lookup of a city's weather record
// @Tags Cities
// @Produce json
// @Param name path string true "City name" example(delhi)
// @Success 200 {object} models.WeatherData
// @Failure 404 {object} ErrorResponse
// @Router /cities/{name} [get]
func (r *routes) handleCity(c *fiber.Ctx) error {
	city, err := r.weather.City(param(c, "name"))
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(city)
}

// handleAQI godoc
// @Summary Classify an AQI value
// @Tags AQI
// @Produce json
// @Param value path integer true "AQI value" example(120)
// @Success 200 {object} models.AQILevel
// @Failure 400 {object} ErrorResponse
// @Router /aqi/{value} [get]
func (r *routes) handleAQI(c *fiber.Ctx) error {
	value, err := strconv.Atoi(c.Params("value"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid AQI value",
		})
	}
	return c.JSON(weather.ClassifyAQI(value))
}

// handleCreateSession godoc
// @Summary Open a view
// @Description Starts a view on the default city with favorites loaded from storage
// @Tags Sessions
// @Produce json
// @Success 201 {object} view.View
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (r *routes) handleCreateSession(c *fiber.Ctx) error {
	s, err := r.sessions.Create(c.UserContext())
	if err != nil {
		return r.fail(c, err)
	}
	v, err := s.View()
	if err != nil {
		return r.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// handleGetSession godoc
// @Summary Render a view
// @Description Returns the display record, forecast strip, favorites and pending notifications. Notifications are drained.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} view.View
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (r *routes) handleGetSession(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}
	return r.respondView(c, s)
}

// handleDeleteSession godoc
// @Summary Close a view
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (r *routes) handleDeleteSession(c *fiber.Ctx) error {
	if err := r.sessions.Delete(c.Params("id")); err != nil {
		return r.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// handleCard godoc
// @Summary Render a view as text
// @Tags Sessions
// @Produce plain
// @Param id path string true "Session ID"
// @Success 200 {string} string
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/card [get]
func (r *routes) handleCard(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}
	v, err := s.Peek()
	if err != nil {
		return r.fail(c, err)
	}
	card, err := presenter.RenderCard(v)
	if err != nil {
		return r.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(card)
}

// handleSearch godoc
// @Summary Search for a city
// @Description Shows the matching city. A miss leaves the view unchanged and queues one not_found notification.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SearchRequest true "Search term"
// @Success 200 {object} view.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/search [post]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}

	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if err := s.Search(req.Term); err != nil && !errors.Is(err, weather.ErrCityNotFound) {
		return r.fail(c, err)
	}

	return r.respondView(c, s)
}

// handleSelectDay godoc
// @Summary Select a forecast day
// @Description index 0..2 shows that forecast day, null returns to today
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectDayRequest true "Day index"
// @Success 200 {object} view.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/day [put]
func (r *routes) handleSelectDay(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}

	var req SelectDayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if err := s.SelectDay(req.Index); err != nil {
		return r.fail(c, err)
	}

	return r.respondView(c, s)
}

// handleToggleFavorite godoc
// @Summary Toggle a favorite city
// @Description Adds the city when absent, removes it when present. Persisted on every change.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param city path string true "City name"
// @Success 200 {object} ToggleFavoriteResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/favorites/{city} [post]
func (r *routes) handleToggleFavorite(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}

	city := param(c, "city")
	added, err := s.ToggleFavorite(c.UserContext(), city)
	if err != nil {
		return r.fail(c, err)
	}

	v, err := s.View()
	if err != nil {
		return r.fail(c, err)
	}

	return c.JSON(ToggleFavoriteResponse{
		City:     city,
		Favorite: added,
		View:     v,
	})
}

// handleExplain godoc
// @Summary Explain the displayed weather
// @Description Sends the current display record to the generative text service. One call at a time per view. 409 when another call is in flight or the city or day changed before the answer arrived.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ExplainResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /sessions/{id}/explain [post]
func (r *routes) handleExplain(c *fiber.Ctx) error {
	s, err := r.sessions.Get(c.Params("id"))
	if err != nil {
		return r.fail(c, err)
	}

	text, err := s.Explain(c.UserContext())
	if err != nil {
		if errors.Is(err, view.ErrExplainInFlight) || errors.Is(err, view.ErrExplanationStale) {
			return r.fail(c, err)
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Could not generate weather insights",
		})
	}

	return c.JSON(ExplainResponse{Explanation: text})
}

func (r *routes) respondView(c *fiber.Ctx, s *view.Session) error {
	v, err := s.View()
	if err != nil {
		return r.fail(c, err)
	}
	return c.JSON(v)
}

func (r *routes) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, view.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Session not found"})
	case errors.Is(err, weather.ErrCityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "City not found"})
	case errors.Is(err, weather.ErrInvalidDay):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Forecast day out of range"})
	case errors.Is(err, view.ErrExplainInFlight):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "Explanation already in progress"})
	case errors.Is(err, view.ErrExplanationStale):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "Displayed weather changed, explanation discarded"})
	}

	r.l.Error(err, map[string]any{
		"path":   c.Path(),
		"method": c.Method(),
	})

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Internal server error",
	})
}

func param(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
