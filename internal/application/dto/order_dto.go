package dto

import "time"

// OrderItemRequest un renglón del pedido entrante.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest entrada para colocar un pedido.
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required"`
	Products   []OrderItemRequest `json:"products" validate:"required,min=1"`
}

// UpdateStatusRequest entrada para sobrescribir el estado de un pedido.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse renglón del pedido en respuestas.
type OrderItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse pedido completo (creación y detalle).
type OrderResponse struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customer_id"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Products   []OrderItemResponse `json:"products"`
}

// OrderSummaryResponse resumen para listados (sin ítems).
type OrderSummaryResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderStatusResponse estado actual de un pedido.
type OrderStatusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
