package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EstadoActiva    = "activa"
	EstadoVencida   = "vencida"
	EstadoCancelada = "cancelada"
)

// EstadoValido reports whether s is one of the three lifecycle states.
// The API rejects anything else at the boundary.
func EstadoValido(s string) bool {
	switch s {
	case EstadoActiva, EstadoVencida, EstadoCancelada:
		return true
	default:
		return false
	}
}

// Suscripcion is a priced, time-bounded grant linking one Cliente to one Cuenta.
type Suscripcion struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UUID          string          `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	ClienteID     uint            `gorm:"not null;index" json:"clienteId" validate:"required"`
	Cliente       *Cliente        `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	CuentaID      uint            `gorm:"not null;index" json:"cuentaId" validate:"required"`
	Cuenta        *Cuenta         `gorm:"foreignKey:CuentaID" json:"cuenta,omitempty"`
	FechaInicio   time.Time       `gorm:"not null" json:"fechaInicio"`
	FechaFin      time.Time       `gorm:"not null;index" json:"fechaFin"`
	Precio        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Estado        string          `gorm:"type:varchar(20);not null;default:'activa';index" json:"estado" validate:"oneof=activa vencida cancelada"`
	Renovacion    bool            `gorm:"not null;default:true" json:"renovacion"`
	Observaciones string          `gorm:"type:text" json:"observaciones"`
	Pagos         []Pago          `gorm:"foreignKey:SuscripcionID;constraint:OnDelete:CASCADE" json:"pagos,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Suscripcion model
func (Suscripcion) TableName() string {
	return "suscripciones"
}

func (s *Suscripcion) Validate() error {
	v := validator.New()

	return v.Struct(s)
}

// BeforeCreate fills the UUID and the documented defaults: fechaInicio
// falls back to the creation time, estado to activa.
func (s *Suscripcion) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.New().String()
	}
	if s.FechaInicio.IsZero() {
		s.FechaInicio = time.Now()
	}
	if s.Estado == "" {
		s.Estado = EstadoActiva
	}
	return nil
}

// EstaActiva reports whether the subscription counts against account capacity.
func (s *Suscripcion) EstaActiva() bool {
	return s.Estado == EstadoActiva
}
