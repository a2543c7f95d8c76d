package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail writes the {success:false, error} body used by every error response.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// validationFailed reports validator errors per field.
func validationFailed(c *fiber.Ctx, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"errors":  errorMessages,
	})
}

// mistypedFields reports typed properties that were sent with a value of
// another JSON type.
func mistypedFields(c *fiber.Ctx, keys []string) error {
	errorMessages := make(map[string]string, len(keys))
	for _, k := range keys {
		errorMessages[k] = fmt.Sprintf("Field '%s' has the wrong type", k)
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"errors":  errorMessages,
	})
}

// bindJSON decodes the body into out when it is sent as JSON. An empty body
// or one with another content type leaves out untouched, as if {} was sent.
func bindJSON(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 || !c.Is("json") {
		return nil
	}
	return c.BodyParser(out)
}
