// Package customer orquesta el CRUD de clientes con semántica por versión del API:
// verificación de existencia antes de mutar, merge parcial en v2 y forma de
// respuesta distinta por versión. No guarda estado entre llamadas.
package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/domain"
	"github.com/arquetipo/clientes-api/internal/domain/entity"
	"github.com/arquetipo/clientes-api/internal/domain/repository"
)

// Mapper conversiones entre formas de request/response y modelos internos.
// La implementación por defecto es mapper.CustomerMapper.
type Mapper interface {
	ToResponses(list []*entity.Customer) []dto.CustomerResponse
	ToResponsesV2(list []*entity.Customer) []dto.CustomerResponseV2
	CreateV1ToWrite(reqs []dto.CreateCustomerRequestV1) []entity.CustomerWriteModel
	CreateV2ToWrite(reqs []dto.CreateCustomerRequestV2) []entity.CustomerWriteModel
	UpdateV1ToWrite(req dto.UpdateCustomerRequestV1) entity.CustomerWriteModel
	MergeV2(existing entity.Customer, req dto.UpdateCustomerRequestV2) entity.Customer
	ToWriteModel(c entity.Customer) entity.CustomerWriteModel
}

// Handler casos de uso de clientes v1 y v2.
type Handler struct {
	repo         repository.CustomerRepository
	mapper       Mapper
	newSessionID func() string
}

// NewHandler construye el handler.
func NewHandler(repo repository.CustomerRepository, m Mapper) *Handler {
	return &Handler{
		repo:         repo,
		mapper:       m,
		newSessionID: uuid.NewString,
	}
}

// GetAllV1 devuelve todos los clientes en la forma v1.
func (h *Handler) GetAllV1(ctx context.Context) (dto.Envelope[dto.CustomerResponse], error) {
	list, err := h.repo.GetAll(ctx, 0, 0)
	if err != nil {
		return dto.Envelope[dto.CustomerResponse]{}, err
	}
	return dto.NewEnvelope(h.newSessionID(), h.mapper.ToResponses(list)), nil
}

// GetByIDV1 busca un cliente. Si no existe, el sobre va con data vacío (no es error).
func (h *Handler) GetByIDV1(ctx context.Context, id int64) (dto.Envelope[dto.CustomerResponse], error) {
	c, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return dto.Envelope[dto.CustomerResponse]{}, err
	}
	return dto.NewEnvelope(h.newSessionID(), h.mapper.ToResponses(single(c))), nil
}

// GetAllV2 lista clientes paginados en la forma v2. Si email viene informado,
// filtra por email (0 o 1 resultado) e ignora la paginación.
func (h *Handler) GetAllV2(ctx context.Context, page, pageSize int, email *string) (dto.Envelope[dto.CustomerResponseV2], error) {
	var list []*entity.Customer
	if email != nil && strings.TrimSpace(*email) != "" {
		c, err := h.repo.GetByEmail(ctx, strings.TrimSpace(*email))
		if err != nil {
			return dto.Envelope[dto.CustomerResponseV2]{}, err
		}
		list = single(c)
	} else {
		p := dto.PageRequest{Page: page, PageSize: pageSize}
		p.Normalize()
		var err error
		list, err = h.repo.GetAll(ctx, p.Page, p.PageSize)
		if err != nil {
			return dto.Envelope[dto.CustomerResponseV2]{}, err
		}
	}
	return dto.NewEnvelope(h.newSessionID(), h.mapper.ToResponsesV2(list)), nil
}

// GetByIDV2 igual que GetByIDV1 pero con la forma v2.
func (h *Handler) GetByIDV2(ctx context.Context, id int64) (dto.Envelope[dto.CustomerResponseV2], error) {
	c, err := h.repo.GetByID(ctx, id)
	if err != nil {
		return dto.Envelope[dto.CustomerResponseV2]{}, err
	}
	return dto.NewEnvelope(h.newSessionID(), h.mapper.ToResponsesV2(single(c))), nil
}

// CreateV1 mapea el lote completo y lo persiste con una sola llamada.
// Un error del repositorio aborta el lote entero.
func (h *Handler) CreateV1(ctx context.Context, reqs []dto.CreateCustomerRequestV1) error {
	if len(reqs) == 0 {
		return fmt.Errorf("lote de clientes vacío: %w", domain.ErrInvalidInput)
	}
	return h.repo.AddBatch(ctx, h.mapper.CreateV1ToWrite(reqs))
}

// CreateV2 igual que CreateV1 con la forma de request v2.
func (h *Handler) CreateV2(ctx context.Context, reqs []dto.CreateCustomerRequestV2) error {
	if len(reqs) == 0 {
		return fmt.Errorf("lote de clientes vacío: %w", domain.ErrInvalidInput)
	}
	return h.repo.AddBatch(ctx, h.mapper.CreateV2ToWrite(reqs))
}

// UpdateV1 reemplazo completo. Verifica existencia antes de mapear o escribir;
// si el cliente no existe devuelve false sin tocar el repositorio.
func (h *Handler) UpdateV1(ctx context.Context, req dto.UpdateCustomerRequestV1) (bool, error) {
	exists, err := h.repo.Exists(ctx, req.ID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := h.repo.Update(ctx, h.mapper.UpdateV1ToWrite(req)); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateV2 actualización parcial: lee la entidad actual, aplica el merge y
// escribe el resultado. Si no existe devuelve false sin escribir.
func (h *Handler) UpdateV2(ctx context.Context, req dto.UpdateCustomerRequestV2) (bool, error) {
	existing, err := h.repo.GetByID(ctx, req.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	merged := h.mapper.MergeV2(*existing, req)
	if err := h.repo.Update(ctx, h.mapper.ToWriteModel(merged)); err != nil {
		return false, err
	}
	return true, nil
}

// Delete elimina el cliente solo si existe; devuelve el resultado de la verificación.
func (h *Handler) Delete(ctx context.Context, id int64) (bool, error) {
	exists, err := h.repo.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func single(c *entity.Customer) []*entity.Customer {
	if c == nil {
		return nil
	}
	return []*entity.Customer{c}
}
