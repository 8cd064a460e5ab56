package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

// Ledger es la fuente única de verdad del stock: toda lectura de disponibilidad
// y toda mutación de stock pasan por aquí. El decremento solo ocurre dentro de
// una transacción, con la fila del producto bloqueada (SELECT FOR UPDATE).
type Ledger struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewLedger construye el ledger con repositorios atados al pool (solo lecturas).
func NewLedger(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *Ledger {
	return &Ledger{productRepo: productRepo, movementRepo: movementRepo}
}

// CheckAvailability consulta si hay stock suficiente. Lectura sin bloqueo:
// el resultado puede quedar obsoleto bajo concurrencia; la verificación
// autoritativa es ReserveAndDecrement.
// Devuelve (nil, false, nil) si el producto no existe.
func (l *Ledger) CheckAvailability(ctx context.Context, productID, quantity int64) (*entity.Product, bool, error) {
	if quantity <= 0 {
		return nil, false, domain.ErrInvalidInput
	}
	product, err := l.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, nil
	}
	return product, product.Stock >= quantity, nil
}

// ReserveAndDecrement re-verifica y decrementa el stock de forma atómica usando
// los repositorios atados a la transacción del caller. Bloquea la fila del
// producto, por lo que dos colocaciones concurrentes sobre el mismo producto se
// serializan: nunca puede quedar stock negativo.
// Registra además el movimiento de auditoría dentro de la misma transacción.
func (l *Ledger) ReserveAndDecrement(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	txID string,
	orderID *int64,
	productID, quantity int64,
) error {
	product, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewProductUnavailable(productID, domain.ErrProductNotFound)
	}
	if product.Stock < quantity {
		return domain.NewProductUnavailable(productID, domain.ErrInsufficientStock)
	}
	if err := productRepo.DecrementStock(ctx, productID, quantity); err != nil {
		return err
	}
	movement := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		OrderID:       orderID,
		ProductID:     productID,
		Type:          entity.MovementTypeOUT,
		Quantity:      quantity,
		CreatedAt:     time.Now().UTC(),
	}
	return movementRepo.Create(ctx, movement)
}

// Availability versión para la API: devuelve (nil, nil) si el producto no existe.
func (l *Ledger) Availability(ctx context.Context, productID, quantity int64) (*dto.AvailabilityResponse, error) {
	product, available, err := l.CheckAvailability(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &dto.AvailabilityResponse{
		Available: available,
		Product:   dto.ProductResponse{ID: product.ID, Name: product.Name, Stock: product.Stock},
	}, nil
}

// Movements lista el historial de auditoría de un producto (más reciente primero).
func (l *Ledger) Movements(ctx context.Context, productID int64, limit, offset int) ([]dto.StockMovementResponse, error) {
	movements, err := l.movementRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			OrderID:       m.OrderID,
			ProductID:     m.ProductID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}
