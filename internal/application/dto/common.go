package dto

// ErrorResponse cuerpo de error HTTP. El campo se llama detail por
// compatibilidad con los clientes existentes de la API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// OKResponse respuesta simple de confirmación (ej. DELETE).
type OKResponse struct {
	OK bool `json:"ok"`
}
