package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus ítems.
// GetByID devuelve (nil, nil) cuando el pedido no existe.
type OrderRepository interface {
	// Create inserta el pedido y sus ítems (en el orden recibido) y asigna order.ID.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// UpdateStatus sobrescribe el estado; devuelve false si el pedido no existe.
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	// List devuelve los pedidos en orden de inserción; customerID opcional filtra por cliente.
	List(ctx context.Context, customerID *int64) ([]*entity.Order, error)
}
