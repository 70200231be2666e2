package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
)

// ClienteController handles the /clientes resource.
type ClienteController struct {
	repo repository.ClienteRepository
}

// NewClienteController creates a cliente controller over the given repository.
func NewClienteController(repo repository.ClienteRepository) *ClienteController {
	return &ClienteController{repo: repo}
}

type clienteCreateRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Notas    string `json:"notas"`
}

// Pointer fields distinguish "not provided" from a provided value; nil
// (absent or null) leaves the stored value untouched.
type clienteUpdateRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
	Notas    *string `json:"notas"`
}

// HandleList returns all clientes, newest first, embedding their
// suscripciones and each suscripcion's cuenta.
func (cc *ClienteController) HandleList(c *fiber.Ctx) error {
	clientes, err := cc.repo.List()
	if err != nil {
		log.Printf("Error al obtener clientes: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener clientes")
	}
	return c.JSON(clientes)
}

// HandleGet returns one cliente with its suscripciones, cuentas and pagos.
func (cc *ClienteController) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	cliente, err := cc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		log.Printf("Error al obtener cliente %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al obtener cliente")
	}
	return c.JSON(cliente)
}

// HandleCreate registers a new cliente. Only nombre is required.
func (cc *ClienteController) HandleCreate(c *fiber.Ctx) error {
	var req clienteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if req.Nombre == "" {
		return errorJSON(c, fiber.StatusBadRequest, "El nombre es requerido")
	}

	cliente := &models.Cliente{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Telefono: req.Telefono,
		Notas:    req.Notas,
	}
	if err := cliente.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de cliente inválidos")
	}

	if err := cc.repo.Create(cliente); err != nil {
		log.Printf("Error al crear cliente: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al crear cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// HandleUpdate applies a sparse update: absent fields keep their stored value.
func (cc *ClienteController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	var req clienteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	cliente, err := cc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		log.Printf("Error al obtener cliente %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar cliente")
	}

	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Telefono != nil {
		cliente.Telefono = *req.Telefono
	}
	if req.Notas != nil {
		cliente.Notas = *req.Notas
	}

	if err := cliente.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Datos de cliente inválidos")
	}

	if err := cc.repo.Update(cliente); err != nil {
		log.Printf("Error al actualizar cliente %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al actualizar cliente")
	}
	return c.JSON(cliente)
}

// HandleDelete removes a cliente; the schema cascades to its suscripciones
// and their pagos.
func (cc *ClienteController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	if err := cc.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		log.Printf("Error al eliminar cliente %d: %v", id, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Error al eliminar cliente")
	}
	return c.JSON(fiber.Map{"message": "Cliente eliminado exitosamente"})
}
