package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
)

// SuscripcionController handles the /suscripciones resource.
type SuscripcionController struct {
	repo repository.SuscripcionRepository
}

// NewSuscripcionController creates a suscripcion controller over the given
// repository.
func NewSuscripcionController(repo repository.SuscripcionRepository) *SuscripcionController {
	return &SuscripcionController{repo: repo}
}

// Precio is a pointer so that an explicit 0 price is distinguishable from an
// absent one; renovacion defaults to true when not sent.
type suscripcionCreateRequest struct {
	ClienteID     uint             `json:"clienteId"`
	CuentaID      uint             `json:"cuentaId"`
	FechaInicio   string           `json:"fechaInicio"`
	FechaFin      string           `json:"fechaFin"`
	Precio        *decimal.Decimal `json:"precio"`
	Estado        string           `json:"estado"`
	Renovacion    *bool            `json:"renovacion"`
	Observaciones string           `json:"observaciones"`
}

type suscripcionUpdateRequest struct {
	ClienteID     *uint            `json:"clienteId"`
	CuentaID      *uint            `json:"cuentaId"`
	FechaInicio   *string          `json:"fechaInicio"`
	FechaFin      *string          `json:"fechaFin"`
	Precio        *decimal.Decimal `json:"precio"`
	Estado        *string          `json:"estado"`
	Renovacion    *bool            `json:"renovacion"`
	Observaciones *string          `json:"observaciones"`
}

// HandleList returns all suscripciones soonest-expiring first, embedding
// cliente, cuenta and pagos.
func (sc *SuscripcionController) HandleList(c *fiber.Ctx) error {
	suscripciones, err := sc.repo.List()
	if err != nil {
		log.Printf("Error al obtener suscripciones: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener suscripciones")
	}
	return c.JSON(suscripciones)
}

// HandleGet returns one suscripcion with cliente, cuenta and its pagos
// newest-payment first.
func (sc *SuscripcionController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	suscripcion, err := sc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Suscripción no encontrada")
		}
		log.Printf("Error al obtener suscripción %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener suscripción")
	}
	return c.JSON(suscripcion)
}

// HandleCreate registers a new suscripcion. Cliente, cuenta, fechaFin and
// precio are required; fechaInicio defaults to now, estado to activa and
// renovacion to true.
func (sc *SuscripcionController) HandleCreate(c *fiber.Ctx) error {
	var req suscripcionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if req.ClienteID == 0 || req.CuentaID == 0 || req.FechaFin == "" || req.Precio == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cliente, cuenta, fecha fin y precio son requeridos")
	}
	if req.Precio.IsNegative() {
		return errorJSON(c, fiber.StatusBadRequest, "El precio no puede ser negativo")
	}
	if req.Estado != "" && !models.EstadoValido(req.Estado) {
		return errorJSON(c, fiber.StatusBadRequest, "Estado inválido")
	}

	fechaFin, err := parseFecha(req.FechaFin)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Fecha fin inválida")
	}

	suscripcion := &models.Suscripcion{
		ClienteID:     req.ClienteID,
		CuentaID:      req.CuentaID,
		FechaFin:      fechaFin,
		Precio:        *req.Precio,
		Estado:        req.Estado,
		Renovacion:    true,
		Observaciones: req.Observaciones,
	}
	if suscripcion.Estado == "" {
		suscripcion.Estado = models.EstadoActiva
	}
	if req.FechaInicio != "" {
		fechaInicio, err := parseFecha(req.FechaInicio)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Fecha inicio inválida")
		}
		suscripcion.FechaInicio = fechaInicio
	}
	if req.Renovacion != nil {
		suscripcion.Renovacion = *req.Renovacion
	}
	if err := suscripcion.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de suscripción inválidos")
	}

	if err := sc.repo.Create(suscripcion); err != nil {
		log.Printf("Error al crear suscripción: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al crear suscripción")
	}
	return c.Status(fiber.StatusCreated).JSON(suscripcion)
}

// HandleUpdate applies a sparse update: absent fields keep their stored
// value; dates and precio are re-parsed from their textual form.
func (sc *SuscripcionController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	var req suscripcionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	suscripcion, err := sc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Suscripción no encontrada")
		}
		log.Printf("Error al obtener suscripción %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar suscripción")
	}

	if req.ClienteID != nil {
		suscripcion.ClienteID = *req.ClienteID
	}
	if req.CuentaID != nil {
		suscripcion.CuentaID = *req.CuentaID
	}
	if req.FechaInicio != nil {
		fechaInicio, err := parseFecha(*req.FechaInicio)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Fecha inicio inválida")
		}
		suscripcion.FechaInicio = fechaInicio
	}
	if req.FechaFin != nil {
		fechaFin, err := parseFecha(*req.FechaFin)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Fecha fin inválida")
		}
		suscripcion.FechaFin = fechaFin
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return errorJSON(c, fiber.StatusBadRequest, "El precio no puede ser negativo")
		}
		suscripcion.Precio = *req.Precio
	}
	if req.Estado != nil {
		if !models.EstadoValido(*req.Estado) {
			return errorJSON(c, fiber.StatusBadRequest, "Estado inválido")
		}
		suscripcion.Estado = *req.Estado
	}
	if req.Renovacion != nil {
		suscripcion.Renovacion = *req.Renovacion
	}
	if req.Observaciones != nil {
		suscripcion.Observaciones = *req.Observaciones
	}

	if err := suscripcion.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de suscripción inválidos")
	}

	if err := sc.repo.Update(suscripcion); err != nil {
		log.Printf("Error al actualizar suscripción %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar suscripción")
	}
	return c.JSON(suscripcion)
}

// HandleDelete removes a suscripcion; the schema cascades to its pagos.
func (sc *SuscripcionController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	if err := sc.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Suscripción no encontrada")
		}
		log.Printf("Error al eliminar suscripción %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al eliminar suscripción")
	}
	return c.JSON(fiber.Map{"message": "Suscripción eliminada exitosamente"})
}
