package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/controllers"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/constants"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/statistics"
)

type HttpRouter struct {
}

// InstallRouter registers the browser-facing pages.
func (h HttpRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()
	panel := controllers.NewPanelController(repos, statistics.NewService(repos))

	app.Get(constants.PanelRoute, panel.HandleIndex)
	app.Get(constants.PanelClientesRoute, panel.HandleClientes)
	app.Get(constants.PanelCuentasRoute, panel.HandleCuentas)
	app.Get(constants.PanelSuscripcionesRoute, panel.HandleSuscripciones)
	app.Get(constants.PanelPagosRoute, panel.HandlePagos)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
