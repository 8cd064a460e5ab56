package repository

import (
	"context"

	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
)

// StockMovementRepository define el puerto para la auditoría de movimientos de stock.
// Create se usa dentro de la transacción de colocación de pedido.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error)
}
