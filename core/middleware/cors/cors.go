package cors

import (
	"github.com/gofiber/fiber/v2"
)

const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "*"
)

// New returns a middleware that stamps the permissive CORS headers onto
// every response once the rest of the chain has produced it. Headers are
// applied even when the chain returns an error, so 404 and 405 responses
// rendered by the error handler carry them too.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, AllowHeaders)
		return err
	}
}
