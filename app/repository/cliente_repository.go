package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// clienteRepository implements the ClienteRepository interface
type clienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository creates a new cliente repository instance
func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

// Create persists a new cliente in the database
func (r *clienteRepository) Create(cliente *models.Cliente) error {
	return r.db.Create(cliente).Error
}

// GetByID retrieves a cliente with its suscripciones, each embedding its
// cuenta and pagos
func (r *clienteRepository) GetByID(id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.
		Preload("Suscripciones.Cuenta").
		Preload("Suscripciones.Pagos").
		First(&cliente, id).Error
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

// List retrieves all clientes newest first, embedding suscripciones and
// each suscripcion's cuenta
func (r *clienteRepository) List() ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := r.db.
		Preload("Suscripciones.Cuenta").
		Order("created_at DESC").
		Find(&clientes).Error
	return clientes, err
}

// Update saves the full cliente row; preloaded associations are left alone
func (r *clienteRepository) Update(cliente *models.Cliente) error {
	return r.db.Omit(clause.Associations).Save(cliente).Error
}

// Delete removes a cliente by ID; the schema cascades to its suscripciones
func (r *clienteRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Cliente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of clientes
func (r *clienteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Cliente{}).Count(&count).Error
	return count, err
}
