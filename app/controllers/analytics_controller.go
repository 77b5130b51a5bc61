package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/metrics/counter"
	"github.com/connectedautocare/quoteapi/internal/pkg/usercontext"
)

// HandleQuoteAnalytics reports quote volume per product kind. Gated on the
// view_analytics permission in the router.
func HandleQuoteAnalytics(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{
		"quotes_issued": counter.Totals(),
	})
}

// HandleQuoteAnalyticsReset drops the quote counters. Resellers can read
// the numbers; only admins may zero them.
func HandleQuoteAnalyticsReset(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return respondError(c, fiber.StatusForbidden, "", "Insufficient permissions")
	}

	_ = counter.Reset()
	return respondOK(c, fiber.Map{"message": "Counters reset"})
}
