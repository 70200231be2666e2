package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cuenta is a shared streaming login with a capacity of concurrent profiles.
type Cuenta struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UUID        string `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	Plataforma  string `gorm:"type:varchar(100);not null" json:"plataforma" validate:"required,min=1,max=100"`
	Email       string `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	// The login secret is a shared credential the administrator hands out,
	// not an authentication factor. It is stored and served in cleartext;
	// Credencial is the single access point for reading it.
	Password      string        `gorm:"type:varchar(255);not null" json:"-" validate:"required"`
	Perfil        string        `gorm:"type:varchar(100)" json:"perfil"`
	MaxPerfiles   int           `gorm:"not null;default:1" json:"maxPerfiles" validate:"min=1"`
	Suscripciones []Suscripcion `gorm:"foreignKey:CuentaID;constraint:OnDelete:CASCADE" json:"suscripciones,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Cuenta model
func (Cuenta) TableName() string {
	return "cuentas"
}

func (c *Cuenta) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// BeforeCreate assigns the public UUID and the capacity floor before insert.
func (c *Cuenta) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	if c.MaxPerfiles < 1 {
		c.MaxPerfiles = 1
	}
	return nil
}

// Credencial returns the stored login secret. Callers never read the
// column directly, so encryption at rest only has to change this method.
func (c *Cuenta) Credencial() string {
	return c.Password
}

// MarshalJSON reinstates the credential in API payloads through the
// Credencial access point.
func (c Cuenta) MarshalJSON() ([]byte, error) {
	type alias Cuenta
	return json.Marshal(struct {
		alias
		Password string `json:"password"`
	}{alias(c), c.Credencial()})
}
