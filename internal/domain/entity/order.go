package entity

import "time"

// StatusPendiente estado inicial de todo pedido recién creado.
// El estado es una etiqueta libre: UpdateStatus acepta cualquier string no vacío.
const StatusPendiente = "Pendiente"

// Order representa un pedido de un cliente con sus ítems en el orden recibido.
type Order struct {
	ID         int64
	CustomerID int64
	Status     string
	CreatedAt  time.Time // UTC
	Items      []OrderItem
}

// OrderItem es un renglón del pedido: producto y cantidad solicitada.
type OrderItem struct {
	ProductID int64
	Quantity  int64
}
