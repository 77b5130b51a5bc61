package hero

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

// Quote is a fully priced Hero protection product.
type Quote struct {
	QuoteID        string    `json:"quote_id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	TermYears      int       `json:"term_years"`
	CoverageLimit  int       `json:"coverage_limit"`
	CustomerType   string    `json:"customer_type"`
	BasePrice      float64   `json:"base_price"`
	Discount       float64   `json:"discount"`
	AdminFee       float64   `json:"admin_fee"`
	Tax            float64   `json:"tax"`
	TotalPrice     float64   `json:"total_price"`
	MonthlyPayment float64   `json:"monthly_payment"`
	Timestamp      time.Time `json:"timestamp"`
}

// Calculate prices a Hero product for the given term.
//
// The base price is an exact per-term lookup; there is no interpolation
// between terms. Wholesale customers get the product's flat discount off the
// base price, the admin fee is added, and tax applies to the discounted base
// only. Monthly payment spreads the total over the full term.
func Calculate(productType string, termYears, coverageLimit int, customerType string) (*Quote, error) {
	product, ok := GetProduct(strings.ToLower(strings.TrimSpace(productType)))
	if !ok {
		return nil, apperror.New(apperror.CodeProductNotFound,
			fmt.Sprintf("Unknown product type %q", productType))
	}

	return priceProduct(product, termYears, coverageLimit, customerType)
}

func priceProduct(product *Product, termYears, coverageLimit int, customerType string) (*Quote, error) {
	basePrice, ok := product.BasePrices[termYears]
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidInput,
			fmt.Sprintf("No price listed for a %d year term; available terms: %v", termYears, product.Terms()))
	}

	customerType = strings.ToLower(strings.TrimSpace(customerType))
	if customerType == "" {
		customerType = "retail"
	}

	discount := 0.0
	discounted := basePrice
	if customerType == "wholesale" {
		discount = basePrice * product.WholesaleDiscount
		discounted = basePrice - discount
	}

	tax := discounted * product.TaxRate
	total := discounted + product.AdminFee + tax
	monthly := total / float64(termYears*12)

	return &Quote{
		QuoteID:        "HERO-" + uuid.NewString(),
		ProductID:      product.ID,
		ProductName:    product.Name,
		TermYears:      termYears,
		CoverageLimit:  coverageLimit,
		CustomerType:   customerType,
		BasePrice:      round2(basePrice),
		Discount:       round2(discount),
		AdminFee:       product.AdminFee,
		Tax:            round2(tax),
		TotalPrice:     round2(total),
		MonthlyPayment: round2(monthly),
		Timestamp:      time.Now().UTC(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
