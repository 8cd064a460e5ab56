package dto

import "time"

// AvailabilityResponse resultado de la consulta de disponibilidad.
type AvailabilityResponse struct {
	Available bool            `json:"available"`
	Product   ProductResponse `json:"product"`
}

// StockMovementResponse un movimiento de stock en el historial de auditoría.
type StockMovementResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	OrderID       *int64    `json:"order_id,omitempty"`
	ProductID     int64     `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}
