package delivery

import (
	"context"

	"sais/config"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func NewHealthDelivery(app *fiber.App, db Pinger) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			config.GetLogrusInstance().WithError(err).Error("database ping failed")
			config.PrintLogInfo(fiber.StatusServiceUnavailable, "Healthz")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "database unavailable",
			})
		}
		config.PrintLogInfo(fiber.StatusOK, "Healthz")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "ok",
		})
	})
}
