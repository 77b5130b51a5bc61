// Package hero holds the Hero protection product catalog and its price
// calculator. The catalog is static data loaded once at process start.
package hero

import "sort"

// Product is an immutable catalog entry. BasePrices maps term length in
// years to the full base price for that term.
type Product struct {
	ID                string
	Name              string
	Category          string
	Description       string
	BasePrices        map[int]float64
	CoverageLimits    []int
	AdminFee          float64
	TaxRate           float64
	WholesaleDiscount float64
}

// Terms returns the available term lengths in years, ascending.
func (p *Product) Terms() []int {
	terms := make([]int, 0, len(p.BasePrices))
	for t := range p.BasePrices {
		terms = append(terms, t)
	}
	sort.Ints(terms)
	return terms
}

// MinPrice returns the lowest listed base price.
func (p *Product) MinPrice() float64 {
	min := 0.0
	for _, price := range p.BasePrices {
		if min == 0 || price < min {
			min = price
		}
	}
	return min
}

// MaxPrice returns the highest listed base price.
func (p *Product) MaxPrice() float64 {
	max := 0.0
	for _, price := range p.BasePrices {
		if price > max {
			max = price
		}
	}
	return max
}

var catalog = map[string]*Product{
	"home_protection": {
		ID:       "home_protection",
		Name:     "Home Protection Plan",
		Category: "home_protection",
		Description: "Comprehensive home protection including deductible " +
			"reimbursement, glass coverage, lockout assistance and emergency services",
		BasePrices:        map[int]float64{1: 199, 2: 358, 3: 498, 4: 637, 5: 756},
		CoverageLimits:    []int{500, 1000},
		AdminFee:          25.00,
		TaxRate:           0.08,
		WholesaleDiscount: 0.15,
	},
	"auto_protection": {
		ID:       "auto_protection",
		Name:     "Comprehensive Auto Protection",
		Category: "auto_protection",
		Description: "All-inclusive automotive protection covering deductible " +
			"reimbursement, dent repair and 24/7 roadside assistance",
		BasePrices:        map[int]float64{1: 299, 2: 568, 3: 807, 4: 1017, 5: 1196},
		CoverageLimits:    []int{500, 1000},
		AdminFee:          25.00,
		TaxRate:           0.08,
		WholesaleDiscount: 0.15,
	},
	"deductible_reimbursement": {
		ID:       "deductible_reimbursement",
		Name:     "All Vehicle Deductible Reimbursement",
		Category: "deductible_reimbursement",
		Description: "Deductible reimbursement for cars, motorcycles, ATVs, " +
			"boats and RVs with identity theft restoration",
		BasePrices:        map[int]float64{1: 150, 2: 255, 3: 345},
		CoverageLimits:    []int{500, 1000},
		AdminFee:          25.00,
		TaxRate:           0.08,
		WholesaleDiscount: 0.15,
	},
}

// GetProduct looks up a product by its identifier.
func GetProduct(productType string) (*Product, bool) {
	p, ok := catalog[productType]
	return p, ok
}

// Products returns the catalog sorted by product ID.
func Products() []*Product {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	products := make([]*Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, catalog[id])
	}
	return products
}
