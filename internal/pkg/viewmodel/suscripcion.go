package viewmodel

import (
	"fmt"
	"time"
)

// DiasUrgencia is the days-remaining threshold at or below which a
// subscription is highlighted as urgent.
const DiasUrgencia = 3

// DiasRestantes returns the whole-day difference between fechaFin and ahora,
// truncated toward zero. Expired subscriptions yield negative values; the
// value is never clamped.
func DiasRestantes(fechaFin, ahora time.Time) int {
	return int(fechaFin.Sub(ahora).Hours() / 24)
}

// EsUrgente reports whether a subscription expiring in diasRestantes days
// should be emphasized on the dashboard. Presentation only, never stored.
func EsUrgente(diasRestantes int) bool {
	return diasRestantes <= DiasUrgencia
}

// EtiquetaVencimiento renders the expiry badge text shown next to a
// subscription on the dashboard.
func EtiquetaVencimiento(diasRestantes int) string {
	switch diasRestantes {
	case 0:
		return "Vence hoy"
	case 1:
		return "Vence mañana"
	default:
		return fmt.Sprintf("%d días", diasRestantes)
	}
}
