package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetClienteRepository returns the cliente repository instance
func (f *Factory) GetClienteRepository() ClienteRepository {
	return f.GetRepositories().Cliente
}

// GetCuentaRepository returns the cuenta repository instance
func (f *Factory) GetCuentaRepository() CuentaRepository {
	return f.GetRepositories().Cuenta
}

// GetSuscripcionRepository returns the suscripcion repository instance
func (f *Factory) GetSuscripcionRepository() SuscripcionRepository {
	return f.GetRepositories().Suscripcion
}

// GetPagoRepository returns the pago repository instance
func (f *Factory) GetPagoRepository() PagoRepository {
	return f.GetRepositories().Pago
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
