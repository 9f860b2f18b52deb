package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalRequestID key del request ID en c.Locals.
const LocalRequestID = "request_id"

// HeaderRequestID header de entrada/salida del request ID.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware propaga el X-Request-ID entrante o genera un UUID nuevo,
// y lo deja en Locals y en el header de respuesta para correlacionar logs.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el request ID del contexto.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
