package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	"github.com/tu-usuario/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta el pedido y sus ítems en el orden recibido, y asigna order.ID.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, order.CustomerID, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i, item := range order.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO order_items (order_id, position, product_id, quantity) VALUES ($1, $2, $3, $4)`,
			order.ID, i, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus ítems. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT id, customer_id, status, created_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) itemsByOrder(ctx context.Context, orderID int64) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY position`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus sobrescribe el estado. Devuelve false si el pedido no existe.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve los pedidos en orden de inserción (sin ítems); customerID opcional filtra por cliente.
func (r *OrderRepo) List(ctx context.Context, customerID *int64) ([]*entity.Order, error) {
	query := `SELECT id, customer_id, status, created_at FROM orders`
	args := []any{}
	if customerID != nil {
		query += ` WHERE customer_id = $1`
		args = append(args, *customerID)
	}
	query += ` ORDER BY id`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
