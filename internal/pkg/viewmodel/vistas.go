package viewmodel

import (
	"time"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// SuscripcionVista decorates a suscripcion with its derived display state.
type SuscripcionVista struct {
	Suscripcion models.Suscripcion
	Dias        int
	Urgente     bool
	Etiqueta    string
}

// NuevaSuscripcionVista computes the derived fields for one suscripcion.
func NuevaSuscripcionVista(s models.Suscripcion, ahora time.Time) SuscripcionVista {
	dias := DiasRestantes(s.FechaFin, ahora)
	return SuscripcionVista{
		Suscripcion: s,
		Dias:        dias,
		Urgente:     EsUrgente(dias),
		Etiqueta:    EtiquetaVencimiento(dias),
	}
}

// CuentaVista decorates a cuenta with its derived capacity state.
type CuentaVista struct {
	Cuenta   models.Cuenta
	Cupos    int
	Etiqueta string
}

// NuevaCuentaVista computes the derived capacity fields for one cuenta.
func NuevaCuentaVista(c models.Cuenta) CuentaVista {
	cupos := CuposDisponibles(&c)
	return CuentaVista{
		Cuenta:   c,
		Cupos:    cupos,
		Etiqueta: EtiquetaCapacidad(cupos),
	}
}
