package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/hero"
	"github.com/connectedautocare/quoteapi/internal/pkg/metrics/counter"
)

type heroQuoteRequest struct {
	ProductType   string `json:"product_type" validate:"required"`
	TermYears     int    `json:"term_years" validate:"required,min=1,max=10"`
	CoverageLimit int    `json:"coverage_limit" validate:"omitempty,oneof=500 1000 2000"`
	CustomerType  string `json:"customer_type" validate:"omitempty,oneof=retail wholesale"`
}

// HandleHeroProducts lists the Hero protection catalog.
func HandleHeroProducts(c *fiber.Ctx) error {
	products := hero.Products()
	out := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		out = append(out, fiber.Map{
			"id":          p.ID,
			"name":        p.Name,
			"category":    p.Category,
			"description": p.Description,
			"min_price":   p.MinPrice(),
			"max_price":   p.MaxPrice(),
			"terms":       p.Terms(),
		})
	}
	return respondOK(c, out)
}

// HandleHeroQuote prices a Hero product.
func HandleHeroQuote(c *fiber.Ctx) error {
	var req heroQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	quote, err := hero.Calculate(req.ProductType, req.TermYears, req.CoverageLimit, req.CustomerType)
	if err != nil {
		return respondDomainError(c, err)
	}

	_ = counter.AddQuote("hero")
	return respondOK(c, quote)
}
