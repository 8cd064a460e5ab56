package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/inventory"
)

// InventoryHandler expone las consultas del ledger de inventario.
type InventoryHandler struct {
	ledger *inventory.Ledger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.Ledger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// Availability godoc
// @Summary      Consultar disponibilidad de stock
// @Description  Lectura sin reserva: el resultado puede quedar obsoleto bajo concurrencia.
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  int  true  "ID del producto"
// @Param        quantity    query  int  true  "Cantidad deseada"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/availability [get]
func (h *InventoryHandler) Availability(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "product_id inválido"})
	}
	quantity, err := strconv.ParseInt(c.Query("quantity"), 10, 64)
	if err != nil || quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "quantity inválido"})
	}
	out, err := h.ledger.Availability(c.UserContext(), productID, quantity)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: "Producto no encontrado"})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de stock de un producto
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  int  true   "ID del producto"
// @Param        limit       query  int  false  "Límite"  default(20)
// @Param        offset      query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "product_id inválido"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.ledger.Movements(c.UserContext(), productID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
