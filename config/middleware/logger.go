package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/utils"

	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
)

// RequestLogger assigns a request id, logs one line per request and records
// the request duration.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = logging.NewRequestID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.SetUserContext(logging.ContextWithRequestID(c.UserContext(), id))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		elapsed := time.Since(start)
		// Label values outlive the request; fasthttp reuses the method buffer.
		metrics.ObserveHTTPRequest(utils.CopyString(c.Method()), utils.CopyString(c.Route().Path), status, elapsed)

		evt := logging.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			evt = logging.Ctx(c.UserContext()).Error().Err(err)
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}

// RateLimit allows max requests per client IP per minute.
func RateLimit(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests, try again later"})
		},
	})
}
