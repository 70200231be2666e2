package statistics

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
)

const (
	// VentanaPorVencer is how far ahead the dashboard looks for
	// subscriptions about to expire.
	VentanaPorVencer = 7 * 24 * time.Hour
	// LimitePorVencer caps the expiring list on the dashboard.
	LimitePorVencer = 10
)

// Resumen is the composite dashboard payload. It is recomputed from the
// store on every request, never cached.
type Resumen struct {
	TotalClientes          int64                `json:"totalClientes"`
	TotalCuentas           int64                `json:"totalCuentas"`
	TotalSuscripciones     int64                `json:"totalSuscripciones"`
	SuscripcionesActivas   int64                `json:"suscripcionesActivas"`
	SuscripcionesVencidas  int64                `json:"suscripcionesVencidas"`
	IngresosMes            decimal.Decimal      `json:"ingresosMes"`
	SuscripcionesPorVencer []models.Suscripcion `json:"suscripcionesPorVencer"`
}

// Service aggregates dashboard statistics over the entity repositories.
type Service struct {
	repos *repository.Repositories
	now   func() time.Time
}

// NewService creates a statistics service over the given repositories.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos, now: time.Now}
}

// InicioDeMes returns the first instant of t's calendar month in t's location.
func InicioDeMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Resumen runs the independent dashboard queries concurrently and fans them
// in to a single payload. Any failing query aborts the whole summary; there
// is no partial response.
func (s *Service) Resumen() (*Resumen, error) {
	ahora := s.now()
	res := &Resumen{}

	var g errgroup.Group
	g.Go(func() error {
		n, err := s.repos.Cliente.Count()
		res.TotalClientes = n
		return err
	})
	g.Go(func() error {
		n, err := s.repos.Cuenta.Count()
		res.TotalCuentas = n
		return err
	})
	g.Go(func() error {
		n, err := s.repos.Suscripcion.Count()
		res.TotalSuscripciones = n
		return err
	})
	g.Go(func() error {
		n, err := s.repos.Suscripcion.CountByEstado(models.EstadoActiva)
		res.SuscripcionesActivas = n
		return err
	})
	g.Go(func() error {
		n, err := s.repos.Suscripcion.CountByEstado(models.EstadoVencida)
		res.SuscripcionesVencidas = n
		return err
	})
	g.Go(func() error {
		total, err := s.repos.Pago.SumMontoDesde(InicioDeMes(ahora))
		res.IngresosMes = total
		return err
	})
	g.Go(func() error {
		porVencer, err := s.repos.Suscripcion.PorVencer(ahora, ahora.Add(VentanaPorVencer), LimitePorVencer)
		res.SuscripcionesPorVencer = porVencer
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if res.SuscripcionesPorVencer == nil {
		res.SuscripcionesPorVencer = []models.Suscripcion{}
	}
	return res, nil
}
