// Package rating prices vehicle service contracts from static rate cards.
// All tables are immutable after process start, so every calculation is a
// pure function of its input and the current year.
package rating

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

const (
	// AdminFee is the flat administrative fee added to every VSC quote.
	AdminFee = 50.00
	// TaxRate is applied to the subtotal (adjusted price + admin fee).
	TaxRate = 0.07
	// quoteValidity is how long an issued quote can be honored.
	quoteValidity = 30 * 24 * time.Hour
)

// QuoteRequest carries the inputs for a VSC quote.
type QuoteRequest struct {
	Make          string
	Model         string
	Year          int
	Mileage       int
	CoverageLevel string
	TermMonths    int
	Deductible    int
	CustomerType  string
}

// VehicleInfo describes the rated vehicle.
type VehicleInfo struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Mileage  int    `json:"mileage"`
	Class    string `json:"vehicle_class"`
	AgeYears int    `json:"age_years"`
}

// Multipliers records every factor that entered the price, for audit.
type Multipliers struct {
	Age              float64 `json:"age"`
	Mileage          float64 `json:"mileage"`
	Term             float64 `json:"term"`
	Deductible       float64 `json:"deductible"`
	CustomerDiscount float64 `json:"customer_discount"`
}

// Quote is a fully priced vehicle service contract.
type Quote struct {
	QuoteID         string      `json:"quote_id"`
	Vehicle         VehicleInfo `json:"vehicle_info"`
	CoverageLevel   string      `json:"coverage_level"`
	TermMonths      int         `json:"term_months"`
	Deductible      int         `json:"deductible"`
	CustomerType    string      `json:"customer_type"`
	BaseRate        float64     `json:"base_price"`
	CalculatedPrice float64     `json:"calculated_price"`
	Discount        float64     `json:"discount"`
	AdminFee        float64     `json:"admin_fee"`
	Subtotal        float64     `json:"subtotal"`
	TaxAmount       float64     `json:"tax_amount"`
	TotalPrice      float64     `json:"total_price"`
	MonthlyPayment  float64     `json:"monthly_payment"`
	Factors         Multipliers `json:"rating_factors"`
	Timestamp       time.Time   `json:"timestamp"`
	ValidUntil      time.Time   `json:"valid_until"`
}

// Calculate prices a vehicle service contract.
//
// The price is the base rate for (vehicle class, coverage level) multiplied
// by the age, mileage, term and deductible factors, with a flat 15%
// reduction for wholesale customers. The admin fee and tax are added on top
// of the adjusted price. Unknown makes are rejected rather than silently
// priced at a default class.
func Calculate(req QuoteRequest) (*Quote, error) {
	now := time.Now().UTC()
	currentYear := now.Year()

	coverage := strings.ToLower(strings.TrimSpace(req.CoverageLevel))
	customerType := strings.ToLower(strings.TrimSpace(req.CustomerType))
	if customerType == "" {
		customerType = "retail"
	}

	if req.Year < 1990 || req.Year > currentYear+1 {
		return nil, apperror.New(apperror.CodeInvalidInput,
			fmt.Sprintf("Vehicle year must be between 1990 and %d", currentYear+1))
	}
	if req.Mileage < 0 || req.Mileage > 500000 {
		return nil, apperror.New(apperror.CodeInvalidInput, "Mileage must be between 0 and 500,000")
	}

	class, ok := ClassifyMake(req.Make)
	if !ok {
		return nil, apperror.New(apperror.CodeVehicleNotSupported,
			fmt.Sprintf("Vehicle make %q is not supported", strings.TrimSpace(req.Make)))
	}

	baseRate, ok := BaseRate(class, coverage)
	if !ok {
		return nil, apperror.New(apperror.CodeRatingError,
			fmt.Sprintf("Unknown coverage level %q", req.CoverageLevel))
	}

	termMult, ok := TermMultiplier(req.TermMonths)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidInput,
			fmt.Sprintf("Term must be one of %v months", Terms()))
	}

	deductibleMult, ok := DeductibleMultiplier(req.Deductible)
	if !ok {
		return nil, apperror.New(apperror.CodeInvalidInput,
			fmt.Sprintf("Deductible must be one of %v", Deductibles()))
	}

	age := currentYear - req.Year
	if age < 0 {
		age = 0
	}
	ageMult := AgeMultiplier(age)
	mileageMult := MileageMultiplier(req.Mileage)

	calculated := baseRate * ageMult * mileageMult * termMult * deductibleMult

	customerDiscount := 1.0
	discount := 0.0
	if customerType == "wholesale" {
		customerDiscount = 1.0 - WholesaleDiscount
		discount = calculated * WholesaleDiscount
		calculated -= discount
	}

	subtotal := calculated + AdminFee
	tax := subtotal * TaxRate
	total := subtotal + tax
	monthly := total / float64(req.TermMonths)

	return &Quote{
		QuoteID: "VSC-" + uuid.NewString(),
		Vehicle: VehicleInfo{
			Make:     titleCase(req.Make),
			Model:    titleCase(req.Model),
			Year:     req.Year,
			Mileage:  req.Mileage,
			Class:    class,
			AgeYears: age,
		},
		CoverageLevel:   coverage,
		TermMonths:      req.TermMonths,
		Deductible:      req.Deductible,
		CustomerType:    customerType,
		BaseRate:        round2(baseRate),
		CalculatedPrice: round2(calculated),
		Discount:        round2(discount),
		AdminFee:        AdminFee,
		Subtotal:        round2(subtotal),
		TaxAmount:       round2(tax),
		TotalPrice:      round2(total),
		MonthlyPayment:  round2(monthly),
		Factors: Multipliers{
			Age:              ageMult,
			Mileage:          mileageMult,
			Term:             termMult,
			Deductible:       deductibleMult,
			CustomerDiscount: customerDiscount,
		},
		Timestamp:  now,
		ValidUntil: now.Add(quoteValidity),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Not Specified"
	}
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
