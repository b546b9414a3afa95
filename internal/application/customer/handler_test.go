package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arquetipo/clientes-api/internal/application/customer"
	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/application/mapper"
	"github.com/arquetipo/clientes-api/internal/domain"
	"github.com/arquetipo/clientes-api/internal/domain/entity"
)

// MockCustomerRepository mock de repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context, page, pageSize int) ([]*entity.Customer, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) AddBatch(ctx context.Context, customers []entity.CustomerWriteModel) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c entity.CustomerWriteModel) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newHandler() (*customer.Handler, *MockCustomerRepository) {
	repo := new(MockCustomerRepository)
	return customer.NewHandler(repo, mapper.NewCustomerMapper()), repo
}

func strPtr(s string) *string { return &s }

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAllV1_ConClientes_DevuelveSobreConDatos(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetAll", ctx, 0, 0).Return([]*entity.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Garcia", Email: "ana.garcia@test.com", Phone: "87654321"},
	}, nil)

	env, err := h.GetAllV1(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(env.Data), 1)
	assert.Equal(t, "Ana", env.Data[0].FirstName)
	assert.Equal(t, "87654321", env.Data[0].Phone)
	assert.Equal(t, dto.StatusOK, env.Status)
	assert.NotEmpty(t, env.SessionID)
}

func TestGetAllV1_SinClientes_DevuelveSecuenciaVacia(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetAll", ctx, 0, 0).Return(nil, nil)

	env, err := h.GetAllV1(ctx)

	require.NoError(t, err)
	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
	assert.Equal(t, dto.StatusOK, env.Status)
	assert.Equal(t, dto.CommentNoData, env.Comment)
}

func TestGetByIDV1_CuandoClienteExiste_DevuelveDatos(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetByID", ctx, int64(1)).Return(&entity.Customer{
		ID: 1, FirstName: "Juan", LastName: "Perez", Email: "juan.perez@test.com", Phone: "12345678",
	}, nil)

	env, err := h.GetByIDV1(ctx, 1)

	require.NoError(t, err)
	require.Len(t, env.Data, 1)
	assert.Equal(t, int64(1), env.Data[0].ID)
}

func TestGetByIDV1_CuandoNoExiste_DevuelveSobreVacioSinError(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetByID", ctx, int64(999)).Return(nil, nil)

	env, err := h.GetByIDV1(ctx, 999)

	require.NoError(t, err)
	assert.Len(t, env.Data, 0)
}

func TestGetByIDV1_ErrorDeRepositorioSePropaga(t *testing.T) {
	h, repo := newHandler()
	dbErr := errors.New("conexión perdida")
	repo.On("GetByID", ctx, int64(1)).Return(nil, dbErr)

	_, err := h.GetByIDV1(ctx, 1)

	assert.ErrorIs(t, err, dbErr)
}

func TestGetAllV2_MapeaAFormaV2ConPaginacion(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetAll", ctx, 1, 10).Return([]*entity.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Sosa", Email: "ana@v2.com", Phone: "111"},
	}, nil)

	env, err := h.GetAllV2(ctx, 1, 10, nil)

	require.NoError(t, err)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "ana@v2.com", env.Data[0].Email)
}

func TestGetAllV2_PaginacionPorDefecto(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetAll", ctx, dto.DefaultPage, dto.DefaultPageSize).Return([]*entity.Customer{}, nil)

	_, err := h.GetAllV2(ctx, 0, 0, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetAllV2_PageSizeSeLimita(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetAll", ctx, 3, dto.MaxPageSize).Return([]*entity.Customer{}, nil)

	_, err := h.GetAllV2(ctx, 3, 5000, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetAllV2_ConEmail_BuscaPorEmail(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetByEmail", ctx, "x@test.com").Return(&entity.Customer{
		ID: 7, FirstName: "Equis", LastName: "Test", Email: "x@test.com",
	}, nil)

	env, err := h.GetAllV2(ctx, 1, 10, strPtr("x@test.com"))

	require.NoError(t, err)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Equis", env.Data[0].FirstName)
	assert.Equal(t, "Test", env.Data[0].LastName)
	repo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetByIDV2_CuandoNoExiste_DevuelveSobreVacio(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetByID", ctx, int64(5)).Return(nil, nil)

	env, err := h.GetByIDV2(ctx, 5)

	require.NoError(t, err)
	assert.Empty(t, env.Data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateV1_EnviaElLoteEnUnaSolaLlamada(t *testing.T) {
	h, repo := newHandler()
	expected := []entity.CustomerWriteModel{
		{FirstName: "Roberto", LastName: "Rojas", Email: "roberto.rojas@test.com", Phone: "987654321"},
		{FirstName: "Ana", LastName: "Garcia", Email: "ana.garcia@test.com", Phone: "87654321"},
	}
	repo.On("AddBatch", ctx, expected).Return(nil).Once()

	err := h.CreateV1(ctx, []dto.CreateCustomerRequestV1{
		{FirstName: "Roberto", LastName: "Rojas", Email: "roberto.rojas@test.com", Phone: "987654321"},
		{FirstName: "Ana", LastName: "Garcia", Email: "ana.garcia@test.com", Phone: "87654321"},
	})

	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "AddBatch", 1)
}

func TestCreateV2_LlamaAlRepositorio(t *testing.T) {
	h, repo := newHandler()
	expected := []entity.CustomerWriteModel{{FirstName: "Nuevo", LastName: "Cliente V2", Email: "v2@test.com"}}
	repo.On("AddBatch", ctx, expected).Return(nil)

	err := h.CreateV2(ctx, []dto.CreateCustomerRequestV2{{FirstName: "Nuevo", LastName: "Cliente V2", Email: "v2@test.com"}})

	require.NoError(t, err)
	repo.AssertCalled(t, "AddBatch", ctx, expected)
}

func TestCreateV1_ErrorDelRepositorioAbortaElLote(t *testing.T) {
	h, repo := newHandler()
	repo.On("AddBatch", ctx, mock.Anything).Return(domain.ErrDuplicate)

	err := h.CreateV1(ctx, []dto.CreateCustomerRequestV1{{FirstName: "A", LastName: "B", Email: "a@b.com"}})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateV1_LoteVacio_NoTocaElRepositorio(t *testing.T) {
	h, repo := newHandler()

	err := h.CreateV1(ctx, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "AddBatch", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización v1
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateV1_CuandoClienteExiste_ActualizaYDevuelveTrue(t *testing.T) {
	h, repo := newHandler()
	req := dto.UpdateCustomerRequestV1{ID: 1, FirstName: "Juan Actualizado", LastName: "Perez", Email: "juan.perez@test.com", Phone: "12345678"}
	expected := entity.CustomerWriteModel{ID: 1, FirstName: "Juan Actualizado", LastName: "Perez", Email: "juan.perez@test.com", Phone: "12345678"}
	repo.On("Exists", ctx, int64(1)).Return(true, nil)
	repo.On("Update", ctx, expected).Return(nil)

	ok, err := h.UpdateV1(ctx, req)

	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertNumberOfCalls(t, "Exists", 1)
	repo.AssertNumberOfCalls(t, "Update", 1)
	repo.AssertCalled(t, "Update", ctx, expected)
}

func TestUpdateV1_CuandoClienteNoExiste_NoLlamaUpdateYDevuelveFalse(t *testing.T) {
	h, repo := newHandler()
	repo.On("Exists", ctx, int64(999)).Return(false, nil)

	ok, err := h.UpdateV1(ctx, dto.UpdateCustomerRequestV1{ID: 999, FirstName: "No", LastName: "Existe", Email: "no@existe.com", Phone: "0"})

	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNumberOfCalls(t, "Exists", 1)
	repo.AssertNumberOfCalls(t, "Update", 0)
}

func TestUpdateV1_ErrorDeEscrituraSePropaga(t *testing.T) {
	h, repo := newHandler()
	dbErr := errors.New("update falló")
	repo.On("Exists", ctx, int64(1)).Return(true, nil)
	repo.On("Update", ctx, mock.Anything).Return(dbErr)

	ok, err := h.UpdateV1(ctx, dto.UpdateCustomerRequestV1{ID: 1, FirstName: "A", LastName: "B", Email: "a@b.com"})

	assert.False(t, ok)
	assert.ErrorIs(t, err, dbErr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización v2 (merge parcial)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateV2_CuandoClienteExiste_MezclaYActualiza(t *testing.T) {
	h, repo := newHandler()
	existing := &entity.Customer{ID: 2, FirstName: "Original", LastName: "Apellido", Email: "test@test.com", Phone: "123"}
	expected := entity.CustomerWriteModel{ID: 2, FirstName: "NombreV2", LastName: "Apellido", Email: "test@test.com", Phone: "123"}
	repo.On("GetByID", ctx, int64(2)).Return(existing, nil)
	repo.On("Update", ctx, expected).Return(nil)

	ok, err := h.UpdateV2(ctx, dto.UpdateCustomerRequestV2{ID: 2, FirstName: strPtr("NombreV2")})

	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertNumberOfCalls(t, "GetByID", 1)
	repo.AssertCalled(t, "Update", ctx, expected)
	repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestUpdateV2_CuandoClienteNoExiste_DevuelveFalse(t *testing.T) {
	h, repo := newHandler()
	repo.On("GetByID", ctx, int64(999)).Return(nil, nil)

	ok, err := h.UpdateV2(ctx, dto.UpdateCustomerRequestV2{ID: 999})

	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_CuandoClienteExiste_EliminaYDevuelveTrue(t *testing.T) {
	h, repo := newHandler()
	repo.On("Exists", ctx, int64(1)).Return(true, nil)
	repo.On("Delete", ctx, int64(1)).Return(nil)

	ok, err := h.Delete(ctx, 1)

	require.NoError(t, err)
	assert.True(t, ok)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDelete_CuandoClienteNoExiste_DevuelveFalse(t *testing.T) {
	h, repo := newHandler()
	repo.On("Exists", ctx, int64(999)).Return(false, nil)

	ok, err := h.Delete(ctx, 999)

	require.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_ErrorEnVerificacionSePropaga(t *testing.T) {
	h, repo := newHandler()
	dbErr := errors.New("timeout")
	repo.On("Exists", ctx, int64(1)).Return(false, dbErr)

	ok, err := h.Delete(ctx, 1)

	assert.False(t, ok)
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
