package errors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// StatusOf picks the HTTP status for an error, defaulting to 500.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return fiber.StatusInternalServerError
}

// HandleError writes the {ok:false, error} failure shape used by the
// abort and submit endpoints.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Err != nil {
			log.Printf("request failed [%s]: %v", ae.Code, ae.Err)
		}
		return c.Status(ae.Status).JSON(fiber.Map{
			"ok":    false,
			"error": ae.Message,
		})
	}

	log.Printf("unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"ok":    false,
		"error": err.Error(),
	})
}
