package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/statistics"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/viewmodel"
)

// PanelController renders the browser pages. Tables and cards are rendered
// server side from the same repositories the JSON API uses; forms and
// destructive actions go through the JSON endpoints from the page scripts.
type PanelController struct {
	repos *repository.Repositories
	stats *statistics.Service
}

// NewPanelController creates the panel controller over the repositories.
func NewPanelController(repos *repository.Repositories, stats *statistics.Service) *PanelController {
	return &PanelController{repos: repos, stats: stats}
}

// HandleIndex renders the dashboard with the aggregated summary and the
// expiring-soon list.
func (pc *PanelController) HandleIndex(c *fiber.Ctx) error {
	resumen, err := pc.stats.Resumen()
	if err != nil {
		log.Printf("Error al obtener estadísticas: %v", err)
		return fiber.ErrInternalServerError
	}

	ahora := time.Now()
	porVencer := make([]viewmodel.SuscripcionVista, 0, len(resumen.SuscripcionesPorVencer))
	for _, s := range resumen.SuscripcionesPorVencer {
		porVencer = append(porVencer, viewmodel.NuevaSuscripcionVista(s, ahora))
	}

	return c.Render("index", fiber.Map{
		"Titulo":    "Panel",
		"Resumen":   resumen,
		"PorVencer": porVencer,
	}, "layouts/main")
}

// HandleClientes renders the cliente management page.
func (pc *PanelController) HandleClientes(c *fiber.Ctx) error {
	clientes, err := pc.repos.Cliente.List()
	if err != nil {
		log.Printf("Error al obtener clientes: %v", err)
		return fiber.ErrInternalServerError
	}
	return c.Render("clientes", fiber.Map{
		"Titulo":   "Clientes",
		"Clientes": clientes,
	}, "layouts/main")
}

// HandleCuentas renders the cuenta cards with their capacity badges.
func (pc *PanelController) HandleCuentas(c *fiber.Ctx) error {
	cuentas, err := pc.repos.Cuenta.List()
	if err != nil {
		log.Printf("Error al obtener cuentas: %v", err)
		return fiber.ErrInternalServerError
	}

	vistas := make([]viewmodel.CuentaVista, 0, len(cuentas))
	for _, cta := range cuentas {
		vistas = append(vistas, viewmodel.NuevaCuentaVista(cta))
	}
	return c.Render("cuentas", fiber.Map{
		"Titulo":  "Cuentas",
		"Cuentas": vistas,
	}, "layouts/main")
}

// HandleSuscripciones renders the suscripcion table with days-remaining
// emphasis.
func (pc *PanelController) HandleSuscripciones(c *fiber.Ctx) error {
	suscripciones, err := pc.repos.Suscripcion.List()
	if err != nil {
		log.Printf("Error al obtener suscripciones: %v", err)
		return fiber.ErrInternalServerError
	}

	// The create form needs the cliente and cuenta selects.
	clientes, err := pc.repos.Cliente.List()
	if err != nil {
		log.Printf("Error al obtener clientes: %v", err)
		return fiber.ErrInternalServerError
	}
	cuentas, err := pc.repos.Cuenta.List()
	if err != nil {
		log.Printf("Error al obtener cuentas: %v", err)
		return fiber.ErrInternalServerError
	}

	ahora := time.Now()
	vistas := make([]viewmodel.SuscripcionVista, 0, len(suscripciones))
	for _, s := range suscripciones {
		vistas = append(vistas, viewmodel.NuevaSuscripcionVista(s, ahora))
	}
	return c.Render("suscripciones", fiber.Map{
		"Titulo":        "Suscripciones",
		"Suscripciones": vistas,
		"Clientes":      clientes,
		"Cuentas":       cuentas,
	}, "layouts/main")
}

// HandlePagos renders the pago history page.
func (pc *PanelController) HandlePagos(c *fiber.Ctx) error {
	pagos, err := pc.repos.Pago.List(0)
	if err != nil {
		log.Printf("Error al obtener pagos: %v", err)
		return fiber.ErrInternalServerError
	}

	suscripciones, err := pc.repos.Suscripcion.List()
	if err != nil {
		log.Printf("Error al obtener suscripciones: %v", err)
		return fiber.ErrInternalServerError
	}

	return c.Render("pagos", fiber.Map{
		"Titulo":        "Pagos",
		"Pagos":         pagos,
		"Suscripciones": suscripciones,
	}, "layouts/main")
}
