package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
)

// PagoController handles the /pagos resource. Pagos are append-only: the
// API exposes list and create, nothing else.
type PagoController struct {
	repo repository.PagoRepository
}

// NewPagoController creates a pago controller over the given repository.
func NewPagoController(repo repository.PagoRepository) *PagoController {
	return &PagoController{repo: repo}
}

type pagoCreateRequest struct {
	SuscripcionID uint             `json:"suscripcionId"`
	Monto         *decimal.Decimal `json:"monto"`
	FechaPago     string           `json:"fechaPago"`
	MetodoPago    string           `json:"metodoPago"`
	Comprobante   string           `json:"comprobante"`
	Notas         string           `json:"notas"`
}

// HandleList returns pagos newest-payment first, optionally filtered by the
// suscripcionId query parameter, embedding each pago's suscripcion with its
// cliente and cuenta.
func (pc *PagoController) HandleList(c *fiber.Ctx) error {
	suscripcionID := c.QueryInt("suscripcionId", 0)
	if suscripcionID < 0 {
		suscripcionID = 0
	}

	pagos, err := pc.repo.List(uint(suscripcionID))
	if err != nil {
		log.Printf("Error al obtener pagos: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener pagos")
	}
	return c.JSON(pagos)
}

// HandleCreate records a new pago. Suscripcion and monto are required;
// fechaPago defaults to now.
func (pc *PagoController) HandleCreate(c *fiber.Ctx) error {
	var req pagoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if req.SuscripcionID == 0 || req.Monto == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Suscripción y monto son requeridos")
	}
	if req.Monto.IsNegative() {
		return errorJSON(c, fiber.StatusBadRequest, "El monto no puede ser negativo")
	}

	pago := &models.Pago{
		SuscripcionID: req.SuscripcionID,
		Monto:         *req.Monto,
		MetodoPago:    req.MetodoPago,
		Comprobante:   req.Comprobante,
		Notas:         req.Notas,
	}
	if req.FechaPago != "" {
		fechaPago, err := parseFecha(req.FechaPago)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Fecha de pago inválida")
		}
		pago.FechaPago = fechaPago
	}
	if err := pago.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de pago inválidos")
	}

	if err := pc.repo.Create(pago); err != nil {
		log.Printf("Error al crear pago: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al crear pago")
	}
	return c.Status(fiber.StatusCreated).JSON(pago)
}
