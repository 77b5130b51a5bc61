package constants

// Static route constants
const (
	PublicRoute = "/"
	HealthRoute = "/health"

	APIRoute = "/api"

	HeroProductsRoute = "/products"
	QuoteRoute        = "/quote"
	OptionsRoute      = "/options"
	VINDecodeRoute    = "/vin/decode"

	RegisterRoute = "/register"
	LoginRoute    = "/login"
	LogoutRoute   = "/logout"
	ProfileRoute  = "/profile"

	WholesaleVSCRoute   = "/wholesale/vsc"
	QuoteAnalyticsRoute = "/analytics/quotes"
)
