package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pedidos-api/internal/application/inventory"
	"github.com/tu-usuario/pedidos-api/internal/application/orders"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	OrderUC        *orders.OrderUseCase
	Ledger         *inventory.Ledger
	RequestTimeout time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	api := app.Group("/api", TimeoutMiddleware(timeout))

	// Products (catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	// Orders (flujo de pedidos)
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id/status", orderHandler.GetStatus)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)

	// Inventory (ledger)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	invGroup.Get("/availability", inventoryHandler.Availability)
	invGroup.Get("/movements", inventoryHandler.Movements)
}
