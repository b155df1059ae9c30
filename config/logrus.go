package config

import (
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	logrusInstance *logrus.Logger
	logrusOnce     sync.Once
)

func GetLogrusInstance() *logrus.Logger {
	logrusOnce.Do(func() {
		logrusInstance = logrus.New()
		logrusInstance.SetOutput(os.Stdout)
		if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
			logrusInstance.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		} else {
			logrusInstance.SetFormatter(&logrus.JSONFormatter{})
		}

		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrusInstance.SetLevel(level)
	})
	return logrusInstance
}

// PrintLogInfo records the outcome of a handler.
func PrintLogInfo(statusCode int, functionName string) {
	entry := GetLogrusInstance().WithFields(logrus.Fields{
		"function":    functionName,
		"status":      statusCode,
		"status_text": http.StatusText(statusCode),
	})

	switch {
	case statusCode >= fiber.StatusInternalServerError:
		entry.Error("request failed")
	case statusCode >= fiber.StatusBadRequest:
		entry.Warn("request rejected")
	default:
		entry.Info("request handled")
	}
}
