package orders

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn devuelve error, todo se revierte:
// ni pedido parcial ni consumo parcial de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
