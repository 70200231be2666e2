package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// suscripcionRepository implements the SuscripcionRepository interface
type suscripcionRepository struct {
	db *gorm.DB
}

// NewSuscripcionRepository creates a new suscripcion repository instance
func NewSuscripcionRepository(db *gorm.DB) SuscripcionRepository {
	return &suscripcionRepository{db: db}
}

// Create persists a new suscripcion and reloads it with cliente and cuenta
// embedded, which is the shape the create endpoint returns
func (r *suscripcionRepository) Create(suscripcion *models.Suscripcion) error {
	if err := r.db.Create(suscripcion).Error; err != nil {
		return err
	}
	return r.db.
		Preload("Cliente").
		Preload("Cuenta").
		First(suscripcion, suscripcion.ID).Error
}

// GetByID retrieves a suscripcion with cliente, cuenta and its pagos
// newest-payment first
func (r *suscripcionRepository) GetByID(id uint) (*models.Suscripcion, error) {
	var suscripcion models.Suscripcion
	err := r.db.
		Preload("Cliente").
		Preload("Cuenta").
		Preload("Pagos", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_pago DESC")
		}).
		First(&suscripcion, id).Error
	if err != nil {
		return nil, err
	}
	return &suscripcion, nil
}

// List retrieves all suscripciones soonest-expiring first, embedding
// cliente, cuenta and pagos
func (r *suscripcionRepository) List() ([]models.Suscripcion, error) {
	var suscripciones []models.Suscripcion
	err := r.db.
		Preload("Cliente").
		Preload("Cuenta").
		Preload("Pagos").
		Order("fecha_fin ASC").
		Find(&suscripciones).Error
	return suscripciones, err
}

// Update saves the full suscripcion row and reloads it with cliente and
// cuenta embedded, so a changed cliente_id or cuenta_id shows the fresh row
func (r *suscripcionRepository) Update(suscripcion *models.Suscripcion) error {
	if err := r.db.Omit(clause.Associations).Save(suscripcion).Error; err != nil {
		return err
	}
	return r.db.
		Preload("Cliente").
		Preload("Cuenta").
		First(suscripcion, suscripcion.ID).Error
}

// Delete removes a suscripcion by ID; the schema cascades to its pagos
func (r *suscripcionRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Suscripcion{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of suscripciones
func (r *suscripcionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Suscripcion{}).Count(&count).Error
	return count, err
}

// CountByEstado returns the number of suscripciones in the given estado
func (r *suscripcionRepository) CountByEstado(estado string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Suscripcion{}).Where("estado = ?", estado).Count(&count).Error
	return count, err
}

// PorVencer returns active suscripciones expiring inside [desde, hasta],
// soonest first, embedding cliente and cuenta
func (r *suscripcionRepository) PorVencer(desde, hasta time.Time, limite int) ([]models.Suscripcion, error) {
	var suscripciones []models.Suscripcion
	err := r.db.
		Preload("Cliente").
		Preload("Cuenta").
		Where("estado = ? AND fecha_fin BETWEEN ? AND ?", models.EstadoActiva, desde, hasta).
		Order("fecha_fin ASC").
		Limit(limite).
		Find(&suscripciones).Error
	return suscripciones, err
}
