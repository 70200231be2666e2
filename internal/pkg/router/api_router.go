package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/controllers"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/constants"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/env"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/statistics"
)

type ApiRouter struct {
}

// InstallRouter registers the JSON resource endpoints at their canonical
// paths, rate limited as a group.
func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := repository.GetGlobalRepositories()

	clientes := controllers.NewClienteController(repos.Cliente)
	cuentas := controllers.NewCuentaController(repos.Cuenta)
	suscripciones := controllers.NewSuscripcionController(repos.Suscripcion)
	pagos := controllers.NewPagoController(repos.Pago)
	stats := controllers.NewStatsController(statistics.NewService(repos))

	lim := limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Storage:    limiterStorage(),
	})
	for _, prefix := range []string{
		constants.ClientesRoute,
		constants.CuentasRoute,
		constants.SuscripcionesRoute,
		constants.PagosRoute,
		constants.StatsRoute,
	} {
		app.Use(prefix, lim)
	}

	app.Get(constants.ClientesRoute, clientes.HandleList)
	app.Post(constants.ClientesRoute, clientes.HandleCreate)
	app.Get(constants.ClientesRoute+"/:id", clientes.HandleGet)
	app.Put(constants.ClientesRoute+"/:id", clientes.HandleUpdate)
	app.Delete(constants.ClientesRoute+"/:id", clientes.HandleDelete)

	app.Get(constants.CuentasRoute, cuentas.HandleList)
	app.Post(constants.CuentasRoute, cuentas.HandleCreate)
	app.Get(constants.CuentasRoute+"/:id", cuentas.HandleGet)
	app.Put(constants.CuentasRoute+"/:id", cuentas.HandleUpdate)
	app.Delete(constants.CuentasRoute+"/:id", cuentas.HandleDelete)

	app.Get(constants.SuscripcionesRoute, suscripciones.HandleList)
	app.Post(constants.SuscripcionesRoute, suscripciones.HandleCreate)
	app.Get(constants.SuscripcionesRoute+"/:id", suscripciones.HandleGet)
	app.Put(constants.SuscripcionesRoute+"/:id", suscripciones.HandleUpdate)
	app.Delete(constants.SuscripcionesRoute+"/:id", suscripciones.HandleDelete)

	app.Get(constants.PagosRoute, pagos.HandleList)
	app.Post(constants.PagosRoute, pagos.HandleCreate)

	app.Get(constants.StatsRoute, stats.HandleStats)
}

// limiterStorage backs the rate limiter with Redis when CACHE_HOST is set,
// so counters survive restarts and are shared between replicas. Without it
// the limiter falls back to its in-memory store.
func limiterStorage() fiber.Storage {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		return nil
	}
	port := 6379
	if v, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379")); err == nil {
		port = v
	}
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 0,
		Reset:    false,
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
