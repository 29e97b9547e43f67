package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type readiness interface {
	IsReady() bool
}

// RequireReady answers 503 until the datasets are loaded, so no handler ever
// serves partially loaded data.
func RequireReady(store readiness) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !store.IsReady() {
			ctx.Set(fiber.HeaderRetryAfter, "1")
			return ctx.Status(fiber.StatusServiceUnavailable).
				JSON(ErrorResponse(fiber.StatusServiceUnavailable, "data is still loading"))
		}
		return ctx.Next()
	}
}
