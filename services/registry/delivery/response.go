package delivery

import (
	"errors"
	"strings"

	"sais/config"
	"sais/domain"

	"github.com/gofiber/fiber/v2"
)

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindInvalidSelection:
		return fiber.StatusBadRequest
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindDuplicate, domain.KindHasDependents, domain.KindConcurrencyConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the failure envelope for err. Internal errors are logged
// and their details withheld from the client.
func respondError(c *fiber.Ctx, functionName string, err error) error {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.NewInternalError(functionName, err)
	}

	status := statusFor(de.Kind)
	if status == fiber.StatusInternalServerError {
		config.GetLogrusInstance().WithError(err).WithField("function", functionName).Error("operation failed")
		config.PrintLogInfo(status, functionName)
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": domain.MsgInternal,
			"error":   fiber.Map{"kind": domain.KindInternal.String(), "code": domain.CodeInternal},
			"data":    nil,
		})
	}

	config.PrintLogInfo(status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": de.Message,
		"error": fiber.Map{
			"kind":   de.Kind.String(),
			"code":   de.Code,
			"field":  de.Field,
			"fields": de.Fields,
		},
		"data": nil,
	})
}

func respondOK(c *fiber.Ctx, status int, functionName, message string, data any) error {
	config.PrintLogInfo(status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"error":   nil,
		"data":    data,
	})
}

// respondBare writes data without the envelope, for typeahead and cascading dropdown endpoints.
func respondBare(c *fiber.Ctx, functionName string, data any) error {
	config.PrintLogInfo(fiber.StatusOK, functionName)
	return c.Status(fiber.StatusOK).JSON(data)
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.NewFieldError(domain.KindValidation, "id", domain.CodeInvalid, "Invalid id")
	}
	return id, nil
}

func queryDate(c *fiber.Ctx, key, label string) (*domain.Date, error) {
	d, err := domain.ParseDate(c.Query(key))
	if err != nil {
		return nil, domain.NewFieldError(domain.KindValidation, key, domain.CodeInvalidDate, label+" must be a valid date (YYYY-MM-DD).")
	}
	return d, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewFieldError(domain.KindValidation, "", domain.CodeInvalid, "Invalid request body")
	}
	return nil
}

func trimmedQuery(c *fiber.Ctx, key string) string {
	return strings.TrimSpace(c.Query(key))
}
