package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"mausam-api/internal/models"
	"mausam-api/internal/repositories"
	"mausam-api/internal/services/weather"
	"mausam-api/pkg/logger"
)

var (
	ErrExplainInFlight  = errors.New("explanation already in progress")
	ErrExplanationStale = errors.New("displayed weather changed during explanation")
)

// Explainer produces the prose blurb for a display record.
type Explainer interface {
	Explain(ctx context.Context, in models.ExplainInput) (models.ExplainOutput, error)
}

// Deps are the collaborators shared by every session.
type Deps struct {
	Weather   *weather.WeatherService
	Favorites repositories.FavoritesRepository
	Explainer Explainer
	Clock     clockwork.Clock
	Logger    *logger.Logger
}

// Session owns the State of one view instance. Transitions are synchronous
// and serialized by mu; only Explain waits on the network, and it does so
// without holding the lock.
type Session struct {
	id   string
	deps Deps

	mu    sync.Mutex
	state State

	// held from the favorites snapshot until Save returns so writes land
	// in toggle order
	saveMu sync.Mutex
}

func newSession(ctx context.Context, id string, city models.WeatherData, deps Deps) *Session {
	s := &Session{
		id:   id,
		deps: deps,
		state: State{City: city},
	}
	s.state.Favorites = NewFavorites(s.loadFavorites(ctx))
	return s
}

func (s *Session) ID() string {
	return s.id
}

// loadFavorites never fails: unreadable or corrupt storage means no favorites.
func (s *Session) loadFavorites(ctx context.Context) []string {
	if s.deps.Favorites == nil {
		return nil
	}
	names, err := s.deps.Favorites.Load(ctx)
	if err != nil {
		s.deps.Logger.Warning("failed to load favorites, starting empty", map[string]any{
			"session": s.id,
			"repo":    s.deps.Favorites.Name(),
			"err":     err,
		})
		return nil
	}
	return names
}

// Search shows the city matching term. On a miss the state is left alone and
// one not-found notification is queued. An empty term does nothing.
func (s *Session) Search(term string) error {
	if term == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SearchTerm = term

	city, err := s.deps.Weather.City(term)
	if err != nil {
		s.state.notify(models.Notification{
			Kind:        models.NotificationNotFound,
			Title:       notFoundTitle,
			Description: fmt.Sprintf(notFoundDescription, term),
		})
		return err
	}

	s.state.City = city
	s.state.SelectedDay = nil
	s.resetExplanation()

	s.deps.Logger.Debug("city selected", map[string]any{"session": s.id, "city": city.City})

	return nil
}

// SelectDay switches the display to forecast day *day, or back to today when
// day is nil.
func (s *Session) SelectDay(day *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day != nil {
		if _, err := weather.DeriveDisplay(s.state.City, day, s.deps.Clock.Now()); err != nil {
			return err
		}
		idx := *day
		day = &idx
	}

	s.state.SelectedDay = day
	s.resetExplanation()

	return nil
}

// ToggleFavorite flips membership of city and persists the result. Write
// failures are logged and otherwise ignored.
func (s *Session) ToggleFavorite(ctx context.Context, city string) (bool, error) {
	data, err := s.deps.Weather.City(city)
	if err != nil {
		return false, err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	added := s.state.Favorites.Toggle(data.City)
	names := s.state.Favorites.List()
	s.mu.Unlock()

	if s.deps.Favorites != nil {
		if err := s.deps.Favorites.Save(ctx, names); err != nil {
			s.deps.Logger.Warning("failed to persist favorites", map[string]any{
				"session": s.id,
				"repo":    s.deps.Favorites.Name(),
				"err":     err,
			})
		}
	}

	return added, nil
}

// Explain asks the explainer about the current display record. While a call
// is in flight further calls fail with ErrExplainInFlight. The call is
// detached from ctx cancellation; once issued it runs to completion. If the
// city or day changed meanwhile the text is discarded and
// ErrExplanationStale is returned.
func (s *Session) Explain(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return "", ErrExplainInFlight
	}
	display, err := s.display()
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	s.state.Loading = true
	s.state.Explanation = ""
	epoch := s.state.epoch
	s.mu.Unlock()

	out, err := s.deps.Explainer.Explain(context.WithoutCancel(ctx), models.NewExplainInput(display))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false

	if err != nil {
		s.deps.Logger.Error(errors.Wrap(err, "explain weather"), map[string]any{
			"session": s.id,
			"city":    display.City,
		})
		s.state.notify(models.Notification{
			Kind:        models.NotificationError,
			Title:       explainErrorTitle,
			Description: explainErrorDesc,
		})
		return "", errors.Wrap(err, "explain weather")
	}

	if epoch != s.state.epoch {
		return "", ErrExplanationStale
	}
	s.state.Explanation = out.Explanation

	return out.Explanation, nil
}

// View renders the current state and drains pending notifications.
func (s *Session) View() (View, error) {
	return s.render(true)
}

// Peek renders the current state and leaves notifications queued.
func (s *Session) Peek() (View, error) {
	return s.render(false)
}

func (s *Session) render(drain bool) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	display, err := s.display()
	if err != nil {
		return View{}, err
	}

	now := s.deps.Clock.Now()
	cards := make([]ForecastCard, 0, len(s.state.City.Forecast))
	for i, f := range s.state.City.Forecast {
		cards = append(cards, ForecastCard{
			Index:         i,
			Day:           f.Day,
			Date:          weather.ForecastDateLabel(now, i),
			Condition:     f.Condition,
			Icon:          f.Condition.Icon(),
			MaxTemp:       f.MaxTemp,
			MinTemp:       f.MinTemp,
			AQI:           f.AQI,
			Precipitation: f.Precipitation,
			Selected:      s.state.SelectedDay != nil && *s.state.SelectedDay == i,
		})
	}

	notifications := append([]models.Notification{}, s.state.notifications...)
	if drain {
		notifications = s.state.drain()
	}

	return View{
		SessionID:     s.id,
		Display:       display,
		Forecast:      cards,
		Favorites:     s.state.Favorites.List(),
		IsFavorite:    s.state.Favorites.Contains(s.state.City.City),
		SearchTerm:    s.state.SearchTerm,
		Explanation:   s.state.Explanation,
		Loading:       s.state.Loading,
		Notifications: notifications,
	}, nil
}

// Display returns the current display record.
func (s *Session) Display() (models.DisplayWeather, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display()
}

func (s *Session) display() (models.DisplayWeather, error) {
	return weather.DeriveDisplay(s.state.City, s.state.SelectedDay, s.deps.Clock.Now())
}

func (s *Session) resetExplanation() {
	s.state.Explanation = ""
	s.state.epoch++
}
