// Package mapper convierte entre las formas de request/response de cada versión
// del API y los modelos internos de cliente.
package mapper

import (
	"strings"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/domain/entity"
)

// CustomerMapper implementación sin estado; segura para uso concurrente.
type CustomerMapper struct{}

// NewCustomerMapper construye el mapper.
func NewCustomerMapper() CustomerMapper {
	return CustomerMapper{}
}

// ToResponses mapea una lista de entidades a la forma v1.
func (CustomerMapper) ToResponses(list []*entity.Customer) []dto.CustomerResponse {
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		out = append(out, dto.CustomerResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
		})
	}
	return out
}

// ToResponsesV2 mapea una lista de entidades a la forma v2 (sin teléfono).
func (CustomerMapper) ToResponsesV2(list []*entity.Customer) []dto.CustomerResponseV2 {
	out := make([]dto.CustomerResponseV2, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		out = append(out, dto.CustomerResponseV2{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		})
	}
	return out
}

// CreateV1ToWrite mapea el lote completo de altas v1.
func (CustomerMapper) CreateV1ToWrite(reqs []dto.CreateCustomerRequestV1) []entity.CustomerWriteModel {
	out := make([]entity.CustomerWriteModel, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, entity.CustomerWriteModel{
			FirstName: strings.TrimSpace(r.FirstName),
			LastName:  strings.TrimSpace(r.LastName),
			Email:     strings.TrimSpace(r.Email),
			Phone:     strings.TrimSpace(r.Phone),
		})
	}
	return out
}

// CreateV2ToWrite mapea el lote completo de altas v2.
func (CustomerMapper) CreateV2ToWrite(reqs []dto.CreateCustomerRequestV2) []entity.CustomerWriteModel {
	out := make([]entity.CustomerWriteModel, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, entity.CustomerWriteModel{
			FirstName: strings.TrimSpace(r.FirstName),
			LastName:  strings.TrimSpace(r.LastName),
			Email:     strings.TrimSpace(r.Email),
			Phone:     strings.TrimSpace(r.Phone),
		})
	}
	return out
}

// UpdateV1ToWrite mapea un reemplazo completo v1.
func (CustomerMapper) UpdateV1ToWrite(req dto.UpdateCustomerRequestV1) entity.CustomerWriteModel {
	return entity.CustomerWriteModel{
		ID:        req.ID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}
}

// MergeV2 aplica una actualización parcial sobre la entidad existente y devuelve
// el resultado. Los campos no nil del request sobrescriben; el resto se conserva.
// El ID siempre es el de la entidad existente.
func (CustomerMapper) MergeV2(existing entity.Customer, req dto.UpdateCustomerRequestV2) entity.Customer {
	merged := existing
	if req.FirstName != nil {
		merged.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		merged.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		merged.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		merged.Phone = strings.TrimSpace(*req.Phone)
	}
	return merged
}

// ToWriteModel proyecta una entidad al modelo de escritura.
func (CustomerMapper) ToWriteModel(c entity.Customer) entity.CustomerWriteModel {
	return entity.CustomerWriteModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
