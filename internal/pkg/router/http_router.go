package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/app/controllers"
	"github.com/connectedautocare/quoteapi/internal/pkg/constants"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.PublicRoute, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Quote API",
			"status":  "running",
			"endpoints": []string{
				"/health",
				"/api/hero/products",
				"/api/hero/quote",
				"/api/vsc/quote",
				"/api/vin/decode",
				"/api/auth/login",
			},
		})
	})

	app.Get(constants.HealthRoute, controllers.HandleHealth)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
