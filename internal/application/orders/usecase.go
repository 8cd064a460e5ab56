package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/inventory"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
	"github.com/tu-usuario/pedidos-api/internal/observability"
	"github.com/tu-usuario/pedidos-api/pkg/logger"
)

// OrderUseCase orquesta la colocación de pedidos y su ciclo de estado.
// La colocación es todo-o-nada: validación previa en el orden del caller,
// luego una sola transacción que crea el pedido y decrementa el stock de cada
// ítem bajo bloqueo de fila. Cualquier fallo revierte la transacción completa.
type OrderUseCase struct {
	txRunner  TxRunner
	ledger    *inventory.Ledger
	orderRepo repository.OrderRepository
	metrics   *observability.Metrics
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	ledger *inventory.Ledger,
	orderRepo repository.OrderRepository,
	metrics *observability.Metrics,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		ledger:    ledger,
		orderRepo: orderRepo,
		metrics:   metrics,
		log:       log,
	}
}

// PlaceOrder valida cada ítem contra el ledger, crea el pedido en estado
// Pendiente y decrementa el stock, todo dentro de una transacción.
// El primer ítem que falle (en el orden recibido) aborta la operación con
// ProductUnavailableError y nada queda escrito.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	start := time.Now()

	if len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Products {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Pasada de validación en el orden del caller: atribución determinista
	// del primer producto ofensor. Lectura sin bloqueo; la verificación
	// autoritativa ocurre dentro de la transacción.
	for _, item := range in.Products {
		product, available, err := uc.ledger.CheckAvailability(ctx, item.ProductID, item.Quantity)
		if err != nil {
			return nil, err
		}
		if product == nil {
			uc.metrics.OrdersRejected.Inc()
			return nil, domain.NewProductUnavailable(item.ProductID, domain.ErrProductNotFound)
		}
		if !available {
			uc.metrics.OrdersRejected.Inc()
			return nil, domain.NewProductUnavailable(item.ProductID, domain.ErrInsufficientStock)
		}
	}

	items := make([]entity.OrderItem, 0, len(in.Products))
	for _, item := range in.Products {
		items = append(items, entity.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order := &entity.Order{
		CustomerID: in.CustomerID,
		Status:     entity.StatusPendiente,
		CreatedAt:  time.Now().UTC(),
		Items:      items,
	}
	txID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := uc.ledger.ReserveAndDecrement(ctx, productRepo, movementRepo, txID, &order.ID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var unavailable *domain.ProductUnavailableError
		if errors.As(err, &unavailable) {
			// Pasó la validación pero el stock cambió antes del commit:
			// otra colocación concurrente ganó la fila.
			uc.metrics.StockConflicts.Inc()
			uc.metrics.OrdersRejected.Inc()
			uc.log.Warn().
				Int64("product_id", unavailable.ProductID).
				Int64("customer_id", in.CustomerID).
				Msg("pedido revertido: stock insuficiente en el commit")
		}
		return nil, err
	}

	uc.metrics.OrdersPlaced.Inc()
	uc.metrics.PlaceDuration.Observe(time.Since(start).Seconds())
	return toOrderResponse(order), nil
}

// GetStatus devuelve el estado actual de un pedido.
func (uc *OrderUseCase) GetStatus(ctx context.Context, orderID int64) (*dto.OrderStatusResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return &dto.OrderStatusResponse{OrderID: order.ID, Status: order.Status}, nil
}

// UpdateStatus sobrescribe el estado con cualquier string no vacío (sin grafo
// de transiciones) y devuelve el registro refrescado. Idempotente.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status string) (*dto.OrderStatusResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrOrderNotFound
	}
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return &dto.OrderStatusResponse{OrderID: order.ID, Status: order.Status}, nil
}

// ListOrders devuelve los pedidos en orden de inserción; customerID opcional filtra por cliente.
func (uc *OrderUseCase) ListOrders(ctx context.Context, customerID *int64) ([]dto.OrderSummaryResponse, error) {
	list, err := uc.orderRepo.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummaryResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OrderSummaryResponse{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Status:     o.Status,
			CreatedAt:  o.CreatedAt,
		})
	}
	return out, nil
}

func toOrderResponse(order *entity.Order) *dto.OrderResponse {
	products := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		products = append(products, dto.OrderItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &dto.OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		Products:   products,
	}
}
