package rating

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

func baseRequest() QuoteRequest {
	return QuoteRequest{
		Make:          "Honda",
		Model:         "Accord",
		Year:          time.Now().UTC().Year() - 5,
		Mileage:       45000,
		CoverageLevel: "gold",
		TermMonths:    36,
		Deductible:    100,
		CustomerType:  "retail",
	}
}

func TestCalculateRetail(t *testing.T) {
	quote, err := Calculate(baseRequest())
	require.NoError(t, err)

	// Class A gold 1200, age 5 -> 1.25, 45k miles -> 1.00, 36 months -> 0.70,
	// $100 deductible -> 1.15.
	expected := 1200.0 * 1.25 * 1.00 * 0.70 * 1.15
	assert.InDelta(t, expected, quote.CalculatedPrice, 0.01)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 50.0, quote.AdminFee)
	assert.InDelta(t, expected+50, quote.Subtotal, 0.01)
	assert.InDelta(t, (expected+50)*0.07, quote.TaxAmount, 0.01)
	assert.InDelta(t, (expected+50)*1.07, quote.TotalPrice, 0.01)
	assert.InDelta(t, quote.TotalPrice/36, quote.MonthlyPayment, 0.01)

	assert.Equal(t, "A", quote.Vehicle.Class)
	assert.Equal(t, 5, quote.Vehicle.AgeYears)
	assert.Equal(t, "Honda", quote.Vehicle.Make)
	assert.Equal(t, "Accord", quote.Vehicle.Model)
	assert.Equal(t, Multipliers{Age: 1.25, Mileage: 1.00, Term: 0.70, Deductible: 1.15, CustomerDiscount: 1.0}, quote.Factors)

	assert.True(t, strings.HasPrefix(quote.QuoteID, "VSC-"))
	assert.Equal(t, 30*24*time.Hour, quote.ValidUntil.Sub(quote.Timestamp))
}

func TestCalculateWholesaleDiscount(t *testing.T) {
	req := baseRequest()
	retail, err := Calculate(req)
	require.NoError(t, err)

	req.CustomerType = "wholesale"
	wholesale, err := Calculate(req)
	require.NoError(t, err)

	assert.InDelta(t, retail.CalculatedPrice*0.85, wholesale.CalculatedPrice, 0.01)
	assert.InDelta(t, retail.CalculatedPrice*0.15, wholesale.Discount, 0.01)
	assert.Equal(t, 0.85, wholesale.Factors.CustomerDiscount)
	assert.Less(t, wholesale.TotalPrice, retail.TotalPrice)
}

func TestCalculateDeterministic(t *testing.T) {
	req := baseRequest()
	a, err := Calculate(req)
	require.NoError(t, err)
	b, err := Calculate(req)
	require.NoError(t, err)

	// Same input, same price; only the quote identity differs.
	assert.Equal(t, a.TotalPrice, b.TotalPrice)
	assert.Equal(t, a.Factors, b.Factors)
	assert.NotEqual(t, a.QuoteID, b.QuoteID)
}

func TestCalculateCoverageLevelOrdering(t *testing.T) {
	req := baseRequest()
	var prev float64
	for _, level := range CoverageLevels() {
		req.CoverageLevel = level
		quote, err := Calculate(req)
		require.NoError(t, err)
		assert.Greater(t, quote.TotalPrice, prev, "coverage %s", level)
		prev = quote.TotalPrice
	}
}

func TestCalculateUnknownMake(t *testing.T) {
	req := baseRequest()
	req.Make = "Yugo"
	_, err := Calculate(req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeVehicleNotSupported, apperror.CodeOf(err))
}

func TestCalculateUnknownCoverage(t *testing.T) {
	req := baseRequest()
	req.CoverageLevel = "bronze"
	_, err := Calculate(req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeRatingError, apperror.CodeOf(err))
}

func TestCalculateInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuoteRequest)
	}{
		{"year too old", func(r *QuoteRequest) { r.Year = 1989 }},
		{"year in future", func(r *QuoteRequest) { r.Year = time.Now().UTC().Year() + 2 }},
		{"negative mileage", func(r *QuoteRequest) { r.Mileage = -1 }},
		{"mileage too high", func(r *QuoteRequest) { r.Mileage = 500001 }},
		{"odd term", func(r *QuoteRequest) { r.TermMonths = 18 }},
		{"odd deductible", func(r *QuoteRequest) { r.Deductible = 250 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			_, err := Calculate(req)
			require.Error(t, err)
			assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
		})
	}
}

func TestCalculateDefaultsCustomerType(t *testing.T) {
	req := baseRequest()
	req.CustomerType = ""
	quote, err := Calculate(req)
	require.NoError(t, err)
	assert.Equal(t, "retail", quote.CustomerType)
	assert.Equal(t, 0.0, quote.Discount)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Honda", titleCase("  honda "))
	assert.Equal(t, "Grand Cherokee", titleCase("GRAND cherokee"))
	assert.Equal(t, "Not Specified", titleCase(""))
}
