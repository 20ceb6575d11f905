package handlers

import (
	"errors"
	"log"

	"github.com/aidevelo/aidevelo-ai-be/internal/services"
	"github.com/gofiber/fiber/v2"
)

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Unrecognized errors are reported as a generic 500 with no internal
// detail.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRateLimited):
		return respondError(c, fiber.StatusTooManyRequests, "rate limit exceeded, please try again later")
	case errors.Is(err, services.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, err.Error())
	default:
		log.Printf("❌ Internal error: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
