package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/connectedautocare/quoteapi/app/controllers"
	"github.com/connectedautocare/quoteapi/internal/pkg/auth"
	"github.com/connectedautocare/quoteapi/internal/pkg/constants"
	"github.com/connectedautocare/quoteapi/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
	}))

	// Public quote endpoints
	heroGroup := api.Group("/hero")
	heroGroup.Get(constants.HeroProductsRoute, controllers.HandleHeroProducts)
	heroGroup.Post(constants.QuoteRoute, controllers.HandleHeroQuote)

	vscGroup := api.Group("/vsc")
	vscGroup.Get(constants.OptionsRoute, controllers.HandleVSCOptions)
	vscGroup.Post(constants.QuoteRoute, controllers.HandleVSCQuote)

	api.Post(constants.VINDecodeRoute, controllers.HandleVINDecode)

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post(constants.RegisterRoute, controllers.HandleRegister)
	authGroup.Post(constants.LoginRoute, controllers.HandleLogin)
	authGroup.Post(constants.LogoutRoute, middleware.TokenRequired(), controllers.HandleLogout)
	authGroup.Get(constants.ProfileRoute, middleware.TokenRequired(), controllers.HandleProfile)

	// Reseller pricing, token + permission gated
	pricingGroup := api.Group("/pricing",
		middleware.TokenRequired(),
		middleware.PermissionRequired(auth.PermissionViewWholesalePricing))
	pricingGroup.Post(constants.WholesaleVSCRoute, controllers.HandleWholesaleVSCQuote)

	// Quote volume, for reseller and admin dashboards
	api.Get(constants.QuoteAnalyticsRoute,
		middleware.TokenRequired(),
		middleware.PermissionRequired(auth.PermissionViewAnalytics),
		controllers.HandleQuoteAnalytics)
	api.Delete(constants.QuoteAnalyticsRoute,
		middleware.TokenRequired(),
		controllers.HandleQuoteAnalyticsReset)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
