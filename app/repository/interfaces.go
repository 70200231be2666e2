package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// ClienteRepository defines the interface for cliente-related database operations
type ClienteRepository interface {
	Create(cliente *models.Cliente) error
	GetByID(id uint) (*models.Cliente, error)
	List() ([]models.Cliente, error)
	Update(cliente *models.Cliente) error
	Delete(id uint) error
	Count() (int64, error)
}

// CuentaRepository defines the interface for cuenta-related database operations
type CuentaRepository interface {
	Create(cuenta *models.Cuenta) error
	GetByID(id uint) (*models.Cuenta, error)
	List() ([]models.Cuenta, error)
	Update(cuenta *models.Cuenta) error
	Delete(id uint) error
	Count() (int64, error)
}

// SuscripcionRepository defines the interface for suscripcion-related database operations
type SuscripcionRepository interface {
	// Create persists the row and reloads it with Cliente and Cuenta embedded.
	Create(suscripcion *models.Suscripcion) error
	GetByID(id uint) (*models.Suscripcion, error)
	List() ([]models.Suscripcion, error)
	// Update saves the row and reloads Cliente and Cuenta, so responses
	// embed the rows the (possibly changed) foreign keys point at.
	Update(suscripcion *models.Suscripcion) error
	Delete(id uint) error
	Count() (int64, error)
	CountByEstado(estado string) (int64, error)
	// PorVencer returns active subscriptions whose fechaFin falls inside
	// [desde, hasta], soonest first, embedding Cliente and Cuenta.
	PorVencer(desde, hasta time.Time, limite int) ([]models.Suscripcion, error)
}

// PagoRepository defines the interface for pago-related database operations
type PagoRepository interface {
	// Create persists the row and reloads it with its Suscripcion (and
	// that suscripcion's Cliente and Cuenta) embedded.
	Create(pago *models.Pago) error
	// List returns pagos newest-payment first; suscripcionID 0 means no filter.
	List(suscripcionID uint) ([]models.Pago, error)
	// SumMontoDesde sums monto over pagos with fecha_pago >= desde.
	SumMontoDesde(desde time.Time) (decimal.Decimal, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Cliente     ClienteRepository
	Cuenta      CuentaRepository
	Suscripcion SuscripcionRepository
	Pago        PagoRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Cliente:     NewClienteRepository(db),
		Cuenta:      NewCuentaRepository(db),
		Suscripcion: NewSuscripcionRepository(db),
		Pago:        NewPagoRepository(db),
	}
}
