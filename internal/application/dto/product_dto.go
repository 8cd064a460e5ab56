package dto

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Stock int64  `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}
