package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

// RequestLogger registra cada petición HTTP con método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return err
	}
}
