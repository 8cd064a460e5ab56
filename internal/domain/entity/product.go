package entity

// Product representa un producto del catálogo con su stock disponible.
// Stock nunca es negativo: lo garantiza el CHECK en la tabla y el hecho de que
// toda mutación pasa por el ledger de inventario (decremento bajo FOR UPDATE).
type Product struct {
	ID    int64
	Name  string
	Stock int64
}
