package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TimeoutMiddleware acota cada request con un deadline. Si expira, el contexto
// cancela la transacción en curso y el rollback deja el sistema sin escrituras
// parciales (mismo contrato todo-o-nada que cualquier otro fallo).
func TimeoutMiddleware(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
