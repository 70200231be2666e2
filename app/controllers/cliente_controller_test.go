package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/models"
)

// clienteRepoStub is an in-memory ClienteRepository for handler tests.
type clienteRepoStub struct {
	clientes map[uint]*models.Cliente
	nextID   uint
	created  int
}

func newClienteRepoStub() *clienteRepoStub {
	return &clienteRepoStub{clientes: map[uint]*models.Cliente{}, nextID: 1}
}

func (s *clienteRepoStub) Create(cliente *models.Cliente) error {
	cliente.ID = s.nextID
	s.nextID++
	s.created++
	copia := *cliente
	s.clientes[cliente.ID] = &copia
	return nil
}

func (s *clienteRepoStub) GetByID(id uint) (*models.Cliente, error) {
	cliente, ok := s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *cliente
	return &copia, nil
}

func (s *clienteRepoStub) List() ([]models.Cliente, error) {
	lista := make([]models.Cliente, 0, len(s.clientes))
	for _, cliente := range s.clientes {
		lista = append(lista, *cliente)
	}
	return lista, nil
}

func (s *clienteRepoStub) Update(cliente *models.Cliente) error {
	if _, ok := s.clientes[cliente.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *cliente
	s.clientes[cliente.ID] = &copia
	return nil
}

func (s *clienteRepoStub) Delete(id uint) error {
	if _, ok := s.clientes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.clientes, id)
	return nil
}

func (s *clienteRepoStub) Count() (int64, error) {
	return int64(len(s.clientes)), nil
}

func newClienteTestApp(repo *clienteRepoStub) *fiber.App {
	app := fiber.New()
	cc := NewClienteController(repo)
	app.Get("/clientes", cc.HandleList)
	app.Post("/clientes", cc.HandleCreate)
	app.Get("/clientes/:id", cc.HandleGet)
	app.Put("/clientes/:id", cc.HandleUpdate)
	app.Delete("/clientes/:id", cc.HandleDelete)
	return app
}

func TestClienteCreate(t *testing.T) {
	repo := newClienteRepoStub()
	app := newClienteTestApp(repo)

	body, _ := json.Marshal(fiber.Map{"nombre": "María López", "telefono": "+51 999 888 777"})
	req := httptest.NewRequest(fiber.MethodPost, "/clientes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var creado models.Cliente
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&creado))
	assert.Equal(t, "María López", creado.Nombre)
	assert.NotZero(t, creado.ID)
	assert.Equal(t, 1, repo.created)
}

func TestClienteCreateRequiresNombre(t *testing.T) {
	repo := newClienteRepoStub()
	app := newClienteTestApp(repo)

	body, _ := json.Marshal(fiber.Map{"email": "sin-nombre@ejemplo.com"})
	req := httptest.NewRequest(fiber.MethodPost, "/clientes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var cuerpo map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cuerpo))
	assert.Equal(t, "El nombre es requerido", cuerpo["error"])
	assert.Equal(t, 0, repo.created, "nothing should be persisted on validation failure")
}

func TestClienteGetNotFound(t *testing.T) {
	app := newClienteTestApp(newClienteRepoStub())

	req := httptest.NewRequest(fiber.MethodGet, "/clientes/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var cuerpo map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cuerpo))
	assert.Equal(t, "Cliente no encontrado", cuerpo["error"])
}

func TestClienteUpdateIsSparse(t *testing.T) {
	repo := newClienteRepoStub()
	repo.clientes[1] = &models.Cliente{
		ID:       1,
		Nombre:   "Carlos",
		Email:    "carlos@ejemplo.com",
		Telefono: "111",
		Notas:    "paga puntual",
	}
	app := newClienteTestApp(repo)

	body, _ := json.Marshal(fiber.Map{"telefono": "222"})
	req := httptest.NewRequest(fiber.MethodPut, "/clientes/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	guardado := repo.clientes[1]
	assert.Equal(t, "222", guardado.Telefono)
	assert.Equal(t, "Carlos", guardado.Nombre)
	assert.Equal(t, "carlos@ejemplo.com", guardado.Email)
	assert.Equal(t, "paga puntual", guardado.Notas)
}

func TestClienteDelete(t *testing.T) {
	repo := newClienteRepoStub()
	repo.clientes[1] = &models.Cliente{ID: 1, Nombre: "Ana"}
	app := newClienteTestApp(repo)

	req := httptest.NewRequest(fiber.MethodDelete, "/clientes/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cuerpo map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cuerpo))
	assert.Equal(t, "Cliente eliminado exitosamente", cuerpo["message"])
	assert.Empty(t, repo.clientes)
}
