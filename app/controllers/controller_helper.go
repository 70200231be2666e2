package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

var errFechaInvalida = errors.New("fecha inválida")

// parseID extracts the numeric :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("identificador inválido")
	}
	return uint(id), nil
}

// parseFecha accepts the two date shapes the browser sends: RFC3339
// timestamps and bare date inputs (interpreted in local time).
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, errFechaInvalida
}

// errorJSON writes the uniform error body used by every endpoint.
func errorJSON(c *fiber.Ctx, status int, mensaje string) error {
	return c.Status(status).JSON(fiber.Map{"error": mensaje})
}
