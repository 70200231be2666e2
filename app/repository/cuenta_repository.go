package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// cuentaRepository implements the CuentaRepository interface
type cuentaRepository struct {
	db *gorm.DB
}

// NewCuentaRepository creates a new cuenta repository instance
func NewCuentaRepository(db *gorm.DB) CuentaRepository {
	return &cuentaRepository{db: db}
}

// Create persists a new cuenta in the database
func (r *cuentaRepository) Create(cuenta *models.Cuenta) error {
	return r.db.Create(cuenta).Error
}

// GetByID retrieves a cuenta with its suscripciones, each embedding its cliente
func (r *cuentaRepository) GetByID(id uint) (*models.Cuenta, error) {
	var cuenta models.Cuenta
	err := r.db.
		Preload("Suscripciones.Cliente").
		First(&cuenta, id).Error
	if err != nil {
		return nil, err
	}
	return &cuenta, nil
}

// List retrieves all cuentas newest first, embedding suscripciones and
// each suscripcion's cliente
func (r *cuentaRepository) List() ([]models.Cuenta, error) {
	var cuentas []models.Cuenta
	err := r.db.
		Preload("Suscripciones.Cliente").
		Order("created_at DESC").
		Find(&cuentas).Error
	return cuentas, err
}

// Update saves the full cuenta row; preloaded associations are left alone
func (r *cuentaRepository) Update(cuenta *models.Cuenta) error {
	return r.db.Omit(clause.Associations).Save(cuenta).Error
}

// Delete removes a cuenta by ID; the schema cascades to its suscripciones
func (r *cuentaRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Cuenta{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of cuentas
func (r *cuentaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Cuenta{}).Count(&count).Error
	return count, err
}
