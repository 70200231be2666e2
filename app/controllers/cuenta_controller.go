package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
)

// CuentaController handles the /cuentas resource.
type CuentaController struct {
	repo repository.CuentaRepository
}

// NewCuentaController creates a cuenta controller over the given repository.
func NewCuentaController(repo repository.CuentaRepository) *CuentaController {
	return &CuentaController{repo: repo}
}

type cuentaCreateRequest struct {
	Plataforma  string `json:"plataforma"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Perfil      string `json:"perfil"`
	MaxPerfiles int    `json:"maxPerfiles"`
}

type cuentaUpdateRequest struct {
	Plataforma  *string `json:"plataforma"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Perfil      *string `json:"perfil"`
	MaxPerfiles *int    `json:"maxPerfiles"`
}

// HandleList returns all cuentas, newest first, embedding their
// suscripciones and each suscripcion's cliente.
func (cc *CuentaController) HandleList(c *fiber.Ctx) error {
	cuentas, err := cc.repo.List()
	if err != nil {
		log.Printf("Error al obtener cuentas: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener cuentas")
	}
	return c.JSON(cuentas)
}

// HandleGet returns one cuenta with its suscripciones and their clientes.
func (cc *CuentaController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	cuenta, err := cc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cuenta no encontrada")
		}
		log.Printf("Error al obtener cuenta %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener cuenta")
	}
	return c.JSON(cuenta)
}

// HandleCreate registers a new cuenta. Plataforma, email and password are
// required; maxPerfiles defaults to 1.
func (cc *CuentaController) HandleCreate(c *fiber.Ctx) error {
	var req cuentaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if req.Plataforma == "" || req.Email == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Plataforma, email y contraseña son requeridos")
	}
	if req.MaxPerfiles == 0 {
		req.MaxPerfiles = 1
	}

	cuenta := &models.Cuenta{
		Plataforma:  req.Plataforma,
		Email:       req.Email,
		Password:    req.Password,
		Perfil:      req.Perfil,
		MaxPerfiles: req.MaxPerfiles,
	}
	if err := cuenta.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de cuenta inválidos")
	}

	if err := cc.repo.Create(cuenta); err != nil {
		log.Printf("Error al crear cuenta: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al crear cuenta")
	}
	return c.Status(fiber.StatusCreated).JSON(cuenta)
}

// HandleUpdate applies a sparse update: absent fields keep their stored value.
func (cc *CuentaController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	var req cuentaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	cuenta, err := cc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cuenta no encontrada")
		}
		log.Printf("Error al obtener cuenta %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar cuenta")
	}

	if req.Plataforma != nil {
		cuenta.Plataforma = *req.Plataforma
	}
	if req.Email != nil {
		cuenta.Email = *req.Email
	}
	if req.Password != nil {
		cuenta.Password = *req.Password
	}
	if req.Perfil != nil {
		cuenta.Perfil = *req.Perfil
	}
	if req.MaxPerfiles != nil {
		cuenta.MaxPerfiles = *req.MaxPerfiles
	}

	if err := cuenta.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de cuenta inválidos")
	}

	if err := cc.repo.Update(cuenta); err != nil {
		log.Printf("Error al actualizar cuenta %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar cuenta")
	}
	return c.JSON(cuenta)
}

// HandleDelete removes a cuenta; the schema cascades to its suscripciones
// and their pagos.
func (cc *CuentaController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	if err := cc.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cuenta no encontrada")
		}
		log.Printf("Error al eliminar cuenta %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al eliminar cuenta")
	}
	return c.JSON(fiber.Map{"message": "Cuenta eliminada exitosamente"})
}
