package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/metrics/counter"
	"github.com/connectedautocare/quoteapi/internal/pkg/rating"
)

// HandleWholesaleVSCQuote prices a VSC at the reseller rate regardless of
// the customer_type in the body. Gated on the view_wholesale_pricing
// permission in the router.
func HandleWholesaleVSCQuote(c *fiber.Ctx) error {
	var req vscQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	ratingReq := req.toRatingRequest()
	ratingReq.CustomerType = "wholesale"

	quote, err := rating.Calculate(ratingReq)
	if err != nil {
		return respondDomainError(c, err)
	}

	_ = counter.AddQuote("vsc")
	return respondOK(c, quote)
}

// HandleVSCOptions lists the supported coverage levels, terms and
// deductibles so clients can build quote forms without hardcoding tables.
func HandleVSCOptions(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{
		"coverage_levels": rating.CoverageLevels(),
		"terms":           rating.Terms(),
		"deductibles":     rating.Deductibles(),
	})
}
