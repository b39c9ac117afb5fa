package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// NewRateLimiter returns a middleware sharing one token bucket across all
// inbound requests. rps may be fractional. Requests over budget get a 429.
func NewRateLimiter(rps float64, burst int) fiber.Handler {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests",
			})
		}
		return c.Next()
	}
}
