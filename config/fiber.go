package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func GetFiberListenAddress() string {
	return fmt.Sprintf("%s:%s", GetFiberHttpHost(), GetFiberHttpPort())
}

func GetFiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: false,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Prefork:               false,
		ServerHeader:          "SAIS",
		AppName:               GetAppName(),
		ReadTimeout:           time.Second * 60,
		CaseSensitive:         true,
		ErrorHandler:          fiberErrorHandler,
	}
}

// fiberErrorHandler answers errors that escaped a handler (unknown routes,
// recovered panics) with the usual envelope.
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred. Please try again."

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		GetLogrusInstance().WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}

	PrintLogInfo(code, c.Route().Path)
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   nil,
		"data":    nil,
	})
}

func GetAppName() string {
	v := os.Getenv("APP_NAME")
	if v == "" {
		return "SAIS"
	}

	return v
}

func GetFiberHttpHost() string {
	env := os.Getenv("HTTP_HOST")
	if env != "" {
		return env
	}
	return "0.0.0.0"
}

func GetFiberHttpPort() string {
	env := os.Getenv("HTTP_PORT")
	if env != "" {
		return env
	}
	return "8000"
}

// GetUseCaseTimeout bounds every use case call.
func GetUseCaseTimeout() time.Duration {
	env := os.Getenv("USECASE_TIMEOUT")
	if env == "" {
		return 10 * time.Second
	}
	d, err := time.ParseDuration(env)
	if err != nil || d <= 0 {
		GetLogrusInstance().Warnf("invalid USECASE_TIMEOUT %q, using 10s", env)
		return 10 * time.Second
	}
	return d
}
