package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/statistics"
)

// StatsController serves the dashboard summary.
type StatsController struct {
	stats *statistics.Service
}

// NewStatsController creates a stats controller over the given service.
func NewStatsController(stats *statistics.Service) *StatsController {
	return &StatsController{stats: stats}
}

// HandleStats returns the composite dashboard summary. Any failing
// underlying query fails the whole request; there is no partial payload.
func (sc *StatsController) HandleStats(c *fiber.Ctx) error {
	resumen, err := sc.stats.Resumen()
	if err != nil {
		log.Printf("Error al obtener estadísticas: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener estadísticas")
	}
	return c.JSON(resumen)
}
