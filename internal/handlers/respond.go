package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// All responses share the `{success: bool, ...}` envelope. debug_info is only
// ever attached to malformed client input, never to server-side failures.

func respondOK(c *fiber.Ctx, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondErrorType(c *fiber.Ctx, status int, message, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"message":    message,
		"error_type": errorType,
	})
}

func respondDebug(c *fiber.Ctx, status int, message string, debugInfo fiber.Map) error {
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"message":    message,
		"debug_info": debugInfo,
	})
}

// ErrorHandler renders panics recovered by middleware and fiber-level errors
// (oversized bodies, unmatched media types) in the response envelope without
// leaking internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusRequestEntityTooLarge:
			return respondError(c, fiber.StatusRequestEntityTooLarge, "File size exceeds 5MB limit")
		case fiber.StatusNotFound:
			return NotFoundHandler(c)
		default:
			return respondError(c, fiberErr.Code, fiberErr.Message)
		}
	}
	return respondError(c, fiber.StatusInternalServerError, "Internal server error")
}

// NotFoundHandler answers unknown paths with the endpoint map so misdirected
// clients can correct themselves.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"message": "Endpoint not found",
		"path":    c.Path(),
		"available_endpoints": fiber.Map{
			"health":  "/health",
			"root":    "/",
			"upload":  "/api/upload-resume",
			"analyze": "/api/analyze-match",
			"history": "/api/analysis-history",
		},
	})
}
