package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP del flujo de pedidos.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Colocar pedido
// @Description  Valida stock de todos los ítems y crea el pedido de forma atómica.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Cuerpo inválido"})
	}
	out, err := h.uc.PlaceOrder(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetStatus godoc
// @Summary      Consultar estado de un pedido
// @Tags         orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [get]
func (h *OrderHandler) GetStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "id inválido"})
	}
	out, err := h.uc.GetStatus(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar estado de un pedido
// @Description  Sobrescribe el estado con cualquier etiqueta no vacía.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderStatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "id inválido"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "Cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Produce      json
// @Param        customer_id  query  int  false  "Filtrar por cliente"
// @Success      200  {array}  dto.OrderSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var customerID *int64
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Detail: "customer_id inválido"})
		}
		customerID = &id
	}
	out, err := h.uc.ListOrders(c.UserContext(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
