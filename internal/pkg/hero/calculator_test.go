package hero

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

func TestPriceProductWorkedExample(t *testing.T) {
	product := &Product{
		ID:                "example",
		Name:              "Example Plan",
		BasePrices:        map[int]float64{3: 399},
		AdminFee:          25.00,
		TaxRate:           0.08,
		WholesaleDiscount: 0.15,
	}

	quote, err := priceProduct(product, 3, 500, "retail")
	require.NoError(t, err)

	assert.Equal(t, 399.0, quote.BasePrice)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 25.0, quote.AdminFee)
	assert.Equal(t, 31.92, quote.Tax)
	assert.Equal(t, 455.92, quote.TotalPrice)
	assert.Equal(t, 12.66, quote.MonthlyPayment)
}

func TestCalculateRetail(t *testing.T) {
	quote, err := Calculate("home_protection", 3, 500, "retail")
	require.NoError(t, err)

	assert.Equal(t, "home_protection", quote.ProductID)
	assert.Equal(t, "Home Protection Plan", quote.ProductName)
	assert.Equal(t, 3, quote.TermYears)
	assert.Equal(t, 500, quote.CoverageLimit)
	assert.Equal(t, 498.0, quote.BasePrice)
	assert.Equal(t, 0.0, quote.Discount)
	assert.InDelta(t, 498*0.08, quote.Tax, 0.001)
	assert.InDelta(t, 498+25+498*0.08, quote.TotalPrice, 0.001)
	assert.InDelta(t, quote.TotalPrice/36, quote.MonthlyPayment, 0.01)
	assert.True(t, strings.HasPrefix(quote.QuoteID, "HERO-"))
}

func TestCalculateWholesale(t *testing.T) {
	retail, err := Calculate("auto_protection", 2, 1000, "retail")
	require.NoError(t, err)
	wholesale, err := Calculate("auto_protection", 2, 1000, "wholesale")
	require.NoError(t, err)

	// Flat 15% off the base price; tax applies to the discounted base.
	assert.InDelta(t, retail.BasePrice*0.15, wholesale.Discount, 0.001)
	assert.InDelta(t, retail.BasePrice*0.85*1.08+25, wholesale.TotalPrice, 0.01)
	assert.Less(t, wholesale.TotalPrice, retail.TotalPrice)
	assert.Equal(t, retail.BasePrice, wholesale.BasePrice)
}

func TestCalculateWholePricingGrid(t *testing.T) {
	for _, product := range Products() {
		for _, term := range product.Terms() {
			quote, err := Calculate(product.ID, term, 500, "retail")
			require.NoError(t, err, "%s %dy", product.ID, term)

			base := product.BasePrices[term]
			assert.InDelta(t, base+product.AdminFee+base*product.TaxRate, quote.TotalPrice, 0.01)
			assert.InDelta(t, quote.TotalPrice/float64(term*12), quote.MonthlyPayment, 0.01)
		}
	}
}

func TestCalculateUnknownProduct(t *testing.T) {
	_, err := Calculate("boat_protection", 1, 500, "retail")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeProductNotFound, apperror.CodeOf(err))
}

func TestCalculateUnlistedTerm(t *testing.T) {
	// deductible_reimbursement only lists 1-3 year terms
	_, err := Calculate("deductible_reimbursement", 4, 500, "retail")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
}

func TestCalculateDefaultsCustomerType(t *testing.T) {
	quote, err := Calculate("home_protection", 1, 500, "")
	require.NoError(t, err)
	assert.Equal(t, "retail", quote.CustomerType)
	assert.Equal(t, 0.0, quote.Discount)
}

func TestProductTermsSorted(t *testing.T) {
	product, ok := GetProduct("auto_protection")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, product.Terms())
	assert.Equal(t, 299.0, product.MinPrice())
	assert.Equal(t, 1196.0, product.MaxPrice())
}

func TestProductsSortedByID(t *testing.T) {
	products := Products()
	require.Len(t, products, 3)
	assert.Equal(t, "auto_protection", products[0].ID)
	assert.Equal(t, "deductible_reimbursement", products[1].ID)
	assert.Equal(t, "home_protection", products[2].ID)
}
