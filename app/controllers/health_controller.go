package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports service liveness. The calculators hold only static
// in-memory tables, so a running process is a healthy one.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"message":   "Quote API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
