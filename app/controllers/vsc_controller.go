package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/metrics/counter"
	"github.com/connectedautocare/quoteapi/internal/pkg/rating"
)

type vscQuoteRequest struct {
	Make          string `json:"make" validate:"required,min=2"`
	Model         string `json:"model"`
	Year          int    `json:"year" validate:"required,min=1900"`
	Mileage       int    `json:"mileage" validate:"min=0"`
	CoverageLevel string `json:"coverage_level" validate:"omitempty,oneof=silver gold platinum"`
	TermMonths    int    `json:"term_months" validate:"omitempty,oneof=12 24 36 48 60 72"`
	Deductible    *int   `json:"deductible" validate:"omitempty"`
	CustomerType  string `json:"customer_type" validate:"omitempty,oneof=retail wholesale"`
}

// toRatingRequest applies catalog defaults: gold coverage, 36 month term,
// $100 deductible.
func (r *vscQuoteRequest) toRatingRequest() rating.QuoteRequest {
	req := rating.QuoteRequest{
		Make:          r.Make,
		Model:         r.Model,
		Year:          r.Year,
		Mileage:       r.Mileage,
		CoverageLevel: r.CoverageLevel,
		TermMonths:    r.TermMonths,
		Deductible:    100,
		CustomerType:  r.CustomerType,
	}
	if req.CoverageLevel == "" {
		req.CoverageLevel = rating.CoverageGold
	}
	if req.TermMonths == 0 {
		req.TermMonths = 36
	}
	if r.Deductible != nil {
		req.Deductible = *r.Deductible
	}
	return req
}

// HandleVSCQuote prices a vehicle service contract.
func HandleVSCQuote(c *fiber.Ctx) error {
	var req vscQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	quote, err := rating.Calculate(req.toRatingRequest())
	if err != nil {
		return respondDomainError(c, err)
	}

	_ = counter.AddQuote("vsc")
	return respondOK(c, quote)
}
