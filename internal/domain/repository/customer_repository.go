package repository

import (
	"context"

	"github.com/arquetipo/clientes-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID y GetByEmail devuelven (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// GetAll lista clientes ordenados por ID. page empieza en 1; pageSize <= 0 devuelve todos.
	GetAll(ctx context.Context, page, pageSize int) ([]*entity.Customer, error)
	// AddBatch inserta todos los clientes o ninguno.
	AddBatch(ctx context.Context, customers []entity.CustomerWriteModel) error
	Update(ctx context.Context, customer entity.CustomerWriteModel) error
	Delete(ctx context.Context, id int64) error
}
