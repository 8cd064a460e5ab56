package entity

import "time"

// MovementTypeOUT salida de stock por colocación de pedido.
const MovementTypeOUT = "OUT"

// StockMovement registro de auditoría de cada decremento de stock.
// TransactionID agrupa todos los movimientos de una misma colocación de pedido.
type StockMovement struct {
	ID            string // uuid
	TransactionID string // uuid, uno por colocación
	OrderID       *int64
	ProductID     int64
	Type          string
	Quantity      int64
	CreatedAt     time.Time
}
