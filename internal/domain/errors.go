package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrOrderNotFound     = errors.New("pedido no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ProductUnavailableError indica que un ítem del pedido no pudo satisfacerse:
// el producto no existe o su stock es menor a la cantidad pedida.
// Envuelve ErrProductNotFound o ErrInsufficientStock para errors.Is.
type ProductUnavailableError struct {
	ProductID int64
	Err       error
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("producto %d no disponible o sin stock suficiente", e.ProductID)
}

func (e *ProductUnavailableError) Unwrap() error {
	return e.Err
}

// NewProductUnavailable construye el error para el producto ofensor.
func NewProductUnavailable(productID int64, cause error) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID, Err: cause}
}
