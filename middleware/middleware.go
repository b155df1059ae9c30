package middleware

import (
	"time"

	"sais/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID tags every request with a UUID, honouring one sent by the client.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})
}

// RequestLogger logs one structured line per request and feeds the HTTP metrics.
func RequestLogger(log *logrus.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.ObserveRequest(c.Method(), route, status, start)

		entry := log.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"route":      route,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.Locals("requestid"),
			"ip":         c.IP(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("http request")
		case status >= fiber.StatusBadRequest:
			entry.Warn("http request")
		default:
			entry.Info("http request")
		}
		return err
	}
}
