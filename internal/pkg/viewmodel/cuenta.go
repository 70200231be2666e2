package viewmodel

import (
	"fmt"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// CuposDisponibles computes free profile slots on a cuenta from its loaded
// suscripciones: maxPerfiles minus the active ones. Nothing enforces the
// capacity at write time, so the result can be zero or negative.
func CuposDisponibles(cuenta *models.Cuenta) int {
	activas := 0
	for i := range cuenta.Suscripciones {
		if cuenta.Suscripciones[i].EstaActiva() {
			activas++
		}
	}
	return cuenta.MaxPerfiles - activas
}

// EtiquetaCapacidad renders the capacity badge for a cuenta card.
func EtiquetaCapacidad(cuposDisponibles int) string {
	if cuposDisponibles > 0 {
		return fmt.Sprintf("%d disponibles", cuposDisponibles)
	}
	return "Completa"
}
