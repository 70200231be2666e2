package constants

// Canonical resource paths of the JSON API.
const (
	ClientesRoute      = "/clientes"
	CuentasRoute       = "/cuentas"
	SuscripcionesRoute = "/suscripciones"
	PagosRoute         = "/pagos"
	StatsRoute         = "/stats"
)

// Browser panel paths.
const (
	PanelRoute              = "/"
	PanelClientesRoute      = "/panel/clientes"
	PanelCuentasRoute       = "/panel/cuentas"
	PanelSuscripcionesRoute = "/panel/suscripciones"
	PanelPagosRoute         = "/panel/pagos"
)
