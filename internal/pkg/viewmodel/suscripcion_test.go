package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

func TestDiasRestantes(t *testing.T) {
	ahora := time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		fechaFin time.Time
		want     int
	}{
		{name: "same instant", fechaFin: ahora, want: 0},
		{name: "five days ahead", fechaFin: ahora.AddDate(0, 0, 5), want: 5},
		{name: "partial day truncates to zero", fechaFin: ahora.Add(23 * time.Hour), want: 0},
		{name: "one and a half days truncates down", fechaFin: ahora.Add(36 * time.Hour), want: 1},
		{name: "expired yesterday", fechaFin: ahora.AddDate(0, 0, -1), want: -1},
		{name: "expired partial day truncates toward zero", fechaFin: ahora.Add(-36 * time.Hour), want: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DiasRestantes(tc.fechaFin, ahora))
		})
	}
}

func TestEsUrgente(t *testing.T) {
	tests := []struct {
		dias int
		want bool
	}{
		{dias: -2, want: true},
		{dias: 0, want: true},
		{dias: 3, want: true},
		{dias: 4, want: false},
		{dias: 10, want: false},
	}

	for _, tt := range tests {
		if got := EsUrgente(tt.dias); got != tt.want {
			t.Fatalf("EsUrgente(%d) = %v, want %v", tt.dias, got, tt.want)
		}
	}
}

func TestEtiquetaVencimiento(t *testing.T) {
	assert.Equal(t, "Vence hoy", EtiquetaVencimiento(0))
	assert.Equal(t, "Vence mañana", EtiquetaVencimiento(1))
	assert.Equal(t, "2 días", EtiquetaVencimiento(2))
	assert.Equal(t, "7 días", EtiquetaVencimiento(7))
	assert.Equal(t, "-1 días", EtiquetaVencimiento(-1))
}

func TestNuevaSuscripcionVista(t *testing.T) {
	ahora := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	s := models.Suscripcion{FechaFin: ahora.AddDate(0, 0, 2)}

	vista := NuevaSuscripcionVista(s, ahora)

	assert.Equal(t, 2, vista.Dias)
	assert.True(t, vista.Urgente)
	assert.Equal(t, "2 días", vista.Etiqueta)
}
