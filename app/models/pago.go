package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pago is a manually recorded money receipt against a Suscripcion.
// Pagos are immutable once created: there is no update or delete endpoint.
type Pago struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UUID          string          `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	SuscripcionID uint            `gorm:"not null;index" json:"suscripcionId" validate:"required"`
	Suscripcion   *Suscripcion    `gorm:"foreignKey:SuscripcionID" json:"suscripcion,omitempty"`
	Monto         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto"`
	FechaPago     time.Time       `gorm:"not null;index" json:"fechaPago"`
	MetodoPago    string          `gorm:"type:varchar(50)" json:"metodoPago"`
	Comprobante   string          `gorm:"type:varchar(255)" json:"comprobante"`
	Notas         string          `gorm:"type:text" json:"notas"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for the Pago model
func (Pago) TableName() string {
	return "pagos"
}

func (p *Pago) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// BeforeCreate assigns the public UUID and defaults fechaPago to now.
func (p *Pago) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	if p.FechaPago.IsZero() {
		p.FechaPago = time.Now()
	}
	return nil
}
