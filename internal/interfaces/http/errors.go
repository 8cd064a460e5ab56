package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP con cuerpo {"detail": ...}.
// NotFound -> 404, no disponible / entrada inválida -> 400, resto -> 500.
func respondError(c *fiber.Ctx, err error) error {
	var unavailable *domain.ProductUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: fmt.Sprintf("Producto %d no disponible o sin stock suficiente.", unavailable.ProductID),
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Order not found"})
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: err.Error()})
	}
}
