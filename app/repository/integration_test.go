package repository

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// setupTestDB connects to the MySQL instance named by TEST_DB_DSN and
// migrates the schema. Tests that need a real database skip when the DSN is
// not set or the instance is unreachable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping database-dependent test: TEST_DB_DSN is not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("Skipping database-dependent test: cannot connect (%v)", err)
	}

	if err := db.AutoMigrate(
		&models.Cliente{},
		&models.Cuenta{},
		&models.Suscripcion{},
		&models.Pago{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	cleanTables(t, db)
	t.Cleanup(func() {
		cleanTables(t, db)
	})
	return db
}

func cleanTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	// Child tables first so the FK constraints never block the cleanup.
	for _, table := range []string{"pagos", "suscripciones", "cuentas", "clientes"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}

func seedClienteCuenta(t *testing.T, db *gorm.DB) (*models.Cliente, *models.Cuenta) {
	t.Helper()

	cliente := &models.Cliente{Nombre: "Cliente de prueba"}
	require.NoError(t, db.Create(cliente).Error)

	cuenta := &models.Cuenta{
		Plataforma:  "Netflix",
		Email:       "prueba@ejemplo.com",
		Password:    "clave",
		MaxPerfiles: 4,
	}
	require.NoError(t, db.Create(cuenta).Error)
	return cliente, cuenta
}

func seedSuscripcion(t *testing.T, db *gorm.DB, clienteID, cuentaID uint, fechaFin time.Time, estado string) *models.Suscripcion {
	t.Helper()

	s := &models.Suscripcion{
		ClienteID: clienteID,
		CuentaID:  cuentaID,
		FechaFin:  fechaFin,
		Precio:    decimal.RequireFromString("10.00"),
		Estado:    estado,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestPorVencerExcludesNonActivas(t *testing.T) {
	db := setupTestDB(t)
	cliente, cuenta := seedClienteCuenta(t, db)
	repo := NewSuscripcionRepository(db)

	ahora := time.Now()
	dentro := seedSuscripcion(t, db, cliente.ID, cuenta.ID, ahora.AddDate(0, 0, 3), models.EstadoActiva)
	masTarde := seedSuscripcion(t, db, cliente.ID, cuenta.ID, ahora.AddDate(0, 0, 6), models.EstadoActiva)
	seedSuscripcion(t, db, cliente.ID, cuenta.ID, ahora.AddDate(0, 0, 3), models.EstadoVencida)
	seedSuscripcion(t, db, cliente.ID, cuenta.ID, ahora.AddDate(0, 0, 3), models.EstadoCancelada)
	seedSuscripcion(t, db, cliente.ID, cuenta.ID, ahora.AddDate(0, 0, 20), models.EstadoActiva)

	porVencer, err := repo.PorVencer(ahora, ahora.Add(7*24*time.Hour), 10)
	require.NoError(t, err)

	// Only the two activas inside the window, soonest first, with the
	// cliente and cuenta rows embedded.
	require.Len(t, porVencer, 2)
	assert.Equal(t, dentro.ID, porVencer[0].ID)
	assert.Equal(t, masTarde.ID, porVencer[1].ID)
	require.NotNil(t, porVencer[0].Cliente)
	assert.Equal(t, cliente.Nombre, porVencer[0].Cliente.Nombre)
	require.NotNil(t, porVencer[0].Cuenta)
	assert.Equal(t, cuenta.Plataforma, porVencer[0].Cuenta.Plataforma)
}

func TestPagosOrdenadosPorFechaPago(t *testing.T) {
	db := setupTestDB(t)
	cliente, cuenta := seedClienteCuenta(t, db)
	suscripcion := seedSuscripcion(t, db, cliente.ID, cuenta.ID, time.Now().AddDate(0, 1, 0), models.EstadoActiva)

	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	for _, horas := range []int{24, 72, 48} {
		pago := &models.Pago{
			SuscripcionID: suscripcion.ID,
			Monto:         decimal.RequireFromString("10.00"),
			FechaPago:     base.Add(time.Duration(horas) * time.Hour),
		}
		require.NoError(t, db.Create(pago).Error)
	}

	cargada, err := NewSuscripcionRepository(db).GetByID(suscripcion.ID)
	require.NoError(t, err)
	require.Len(t, cargada.Pagos, 3)
	for i := 1; i < len(cargada.Pagos); i++ {
		assert.False(t, cargada.Pagos[i].FechaPago.After(cargada.Pagos[i-1].FechaPago),
			"pagos should be ordered newest payment first")
	}

	listados, err := NewPagoRepository(db).List(suscripcion.ID)
	require.NoError(t, err)
	require.Len(t, listados, 3)
	for i := 1; i < len(listados); i++ {
		assert.False(t, listados[i].FechaPago.After(listados[i-1].FechaPago),
			"pagos should be ordered newest payment first")
	}
}

func TestSumMontoDesdeVentanaMensual(t *testing.T) {
	db := setupTestDB(t)
	cliente, cuenta := seedClienteCuenta(t, db)
	suscripcion := seedSuscripcion(t, db, cliente.ID, cuenta.ID, time.Now().AddDate(0, 1, 0), models.EstadoActiva)
	repo := NewPagoRepository(db)

	ahora := time.Now()
	desde := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())

	for _, p := range []struct {
		monto string
		fecha time.Time
	}{
		{monto: "10.00", fecha: desde.Add(1 * time.Hour)},
		{monto: "15.50", fecha: desde.Add(2 * time.Hour)},
		{monto: "99.99", fecha: desde.Add(-1 * time.Hour)}, // previous month
	} {
		pago := &models.Pago{
			SuscripcionID: suscripcion.ID,
			Monto:         decimal.RequireFromString(p.monto),
			FechaPago:     p.fecha,
		}
		require.NoError(t, db.Create(pago).Error)
	}

	total, err := repo.SumMontoDesde(desde)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")),
		"sum should cover the month window only, got %s", total)
}

func TestClienteDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	cliente, cuenta := seedClienteCuenta(t, db)
	suscripcion := seedSuscripcion(t, db, cliente.ID, cuenta.ID, time.Now().AddDate(0, 1, 0), models.EstadoActiva)

	pago := &models.Pago{
		SuscripcionID: suscripcion.ID,
		Monto:         decimal.RequireFromString("10.00"),
		FechaPago:     time.Now(),
	}
	require.NoError(t, db.Create(pago).Error)

	require.NoError(t, NewClienteRepository(db).Delete(cliente.ID))

	var suscripciones, pagos, cuentas int64
	require.NoError(t, db.Model(&models.Suscripcion{}).Count(&suscripciones).Error)
	require.NoError(t, db.Model(&models.Pago{}).Count(&pagos).Error)
	require.NoError(t, db.Model(&models.Cuenta{}).Count(&cuentas).Error)

	assert.Zero(t, suscripciones, "suscripciones should cascade with their cliente")
	assert.Zero(t, pagos, "pagos should cascade with their suscripcion")
	assert.Equal(t, int64(1), cuentas, "cuentas are independent of cliente deletes")
}

func TestSuscripcionUpdateReloadsAsociaciones(t *testing.T) {
	db := setupTestDB(t)
	cliente, cuenta := seedClienteCuenta(t, db)
	suscripcion := seedSuscripcion(t, db, cliente.ID, cuenta.ID, time.Now().AddDate(0, 1, 0), models.EstadoActiva)
	repo := NewSuscripcionRepository(db)

	otro := &models.Cliente{Nombre: "Otro cliente"}
	require.NoError(t, db.Create(otro).Error)

	cargada, err := repo.GetByID(suscripcion.ID)
	require.NoError(t, err)
	cargada.ClienteID = otro.ID

	require.NoError(t, repo.Update(cargada))
	require.NotNil(t, cargada.Cliente)
	assert.Equal(t, otro.ID, cargada.Cliente.ID)
	assert.Equal(t, "Otro cliente", cargada.Cliente.Nombre)
}
