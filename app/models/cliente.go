package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente is a customer who purchases subscription access.
type Cliente struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	UUID          string        `gorm:"type:char(36);uniqueIndex;not null" json:"uuid"`
	Nombre        string        `gorm:"type:varchar(150);not null" json:"nombre" validate:"required,min=1,max=150"`
	Email         string        `gorm:"type:varchar(200)" json:"email" validate:"omitempty,email,max=200"`
	Telefono      string        `gorm:"type:varchar(50)" json:"telefono" validate:"max=50"`
	Notas         string        `gorm:"type:text" json:"notas"`
	Suscripciones []Suscripcion `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"suscripciones,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Cliente model
func (Cliente) TableName() string {
	return "clientes"
}

func (c *Cliente) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// BeforeCreate assigns the public UUID before the row is inserted.
func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	return nil
}
