package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido sobre un Querier transaccional.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// DecrementStock resta quantity al stock del producto ya bloqueado.
	DecrementStock(ctx context.Context, id int64, quantity int64) error
}
