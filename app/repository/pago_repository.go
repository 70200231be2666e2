package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// pagoRepository implements the PagoRepository interface
type pagoRepository struct {
	db *gorm.DB
}

// NewPagoRepository creates a new pago repository instance
func NewPagoRepository(db *gorm.DB) PagoRepository {
	return &pagoRepository{db: db}
}

// Create persists a new pago and reloads it with its suscripcion (plus that
// suscripcion's cliente and cuenta), which is the shape the create endpoint
// returns
func (r *pagoRepository) Create(pago *models.Pago) error {
	if err := r.db.Create(pago).Error; err != nil {
		return err
	}
	return r.db.
		Preload("Suscripcion.Cliente").
		Preload("Suscripcion.Cuenta").
		First(pago, pago.ID).Error
}

// List retrieves pagos newest-payment first, embedding each pago's
// suscripcion with its cliente and cuenta. A suscripcionID of 0 lists all.
func (r *pagoRepository) List(suscripcionID uint) ([]models.Pago, error) {
	var pagos []models.Pago
	q := r.db.
		Preload("Suscripcion.Cliente").
		Preload("Suscripcion.Cuenta").
		Order("fecha_pago DESC")
	if suscripcionID != 0 {
		q = q.Where("suscripcion_id = ?", suscripcionID)
	}
	err := q.Find(&pagos).Error
	return pagos, err
}

// SumMontoDesde sums monto over pagos dated desde or later; months with no
// pagos sum to zero
func (r *pagoRepository) SumMontoDesde(desde time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&models.Pago{}).
		Where("fecha_pago >= ?", desde).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&total).Error
	return total, err
}
