package rating

import (
	"sort"
	"strings"
)

// Coverage levels for vehicle service contracts.
const (
	CoverageSilver   = "silver"
	CoverageGold     = "gold"
	CoveragePlatinum = "platinum"
)

// baseRates maps vehicle class -> coverage level -> base rate in USD.
// Loaded once, never mutated.
var baseRates = map[string]map[string]float64{
	"A": {CoverageSilver: 800, CoverageGold: 1200, CoveragePlatinum: 1600},
	"B": {CoverageSilver: 1000, CoverageGold: 1500, CoveragePlatinum: 2000},
	"C": {CoverageSilver: 1400, CoverageGold: 2100, CoveragePlatinum: 2800},
}

// vehicleClassification maps manufacturer name (lower case) to rate class.
// Class A carries the most reliable makes and the lowest rates, class C the
// highest.
var vehicleClassification = map[string]string{
	// Class A
	"honda": "A", "acura": "A", "toyota": "A", "lexus": "A",
	"nissan": "A", "infiniti": "A", "hyundai": "A", "kia": "A",
	"mazda": "A", "mitsubishi": "A", "scion": "A", "subaru": "A",

	// Class B
	"buick": "B", "chevrolet": "B", "chrysler": "B", "dodge": "B",
	"ford": "B", "gmc": "B", "jeep": "B", "mercury": "B",
	"oldsmobile": "B", "plymouth": "B", "pontiac": "B", "saturn": "B",
	"ram": "B",

	// Class C
	"cadillac": "C", "lincoln": "C", "volkswagen": "C", "volvo": "C",
	"bmw": "C", "mercedes-benz": "C", "mercedes": "C", "audi": "C",
	"jaguar": "C", "land rover": "C", "porsche": "C", "saab": "C",
	"mini": "C",
}

// makeNameOrder lists the classification names sorted, so the substring
// fallback in ClassifyMake resolves the same way every run.
var makeNameOrder = func() []string {
	names := make([]string, 0, len(vehicleClassification))
	for name := range vehicleClassification {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

type band struct {
	Ceiling    int
	Multiplier float64
}

// ageBands maps vehicle age (years) to a pricing factor. Bands are inclusive
// at the ceiling: age 3 still prices at 1.10. Ages above the last ceiling
// use oldVehicleMultiplier.
var ageBands = []band{
	{1, 1.00},
	{3, 1.10},
	{5, 1.25},
	{7, 1.40},
	{10, 1.70},
}

const oldVehicleMultiplier = 2.00

// mileageBands maps odometer reading to a pricing factor, inclusive at the
// ceiling. Mileage above the last ceiling uses extremeMileageMultiplier.
var mileageBands = []band{
	{30000, 0.90},
	{60000, 1.00},
	{90000, 1.15},
	{120000, 1.30},
	{150000, 1.40},
}

const extremeMileageMultiplier = 1.50

// termMultipliers is an exact lookup by contract length in months.
var termMultipliers = map[int]float64{
	12: 0.40,
	24: 0.55,
	36: 0.70,
	48: 0.80,
	60: 0.90,
	72: 1.00,
}

// deductibleMultipliers is an exact lookup by deductible amount in USD.
// A lower deductible means a higher contract price.
var deductibleMultipliers = map[int]float64{
	0:   1.50,
	50:  1.30,
	100: 1.15,
	200: 1.00,
	500: 0.80,
}

// WholesaleDiscount is the flat reduction applied to reseller quotes.
const WholesaleDiscount = 0.15

// ClassifyMake resolves a manufacturer name to its rate class. Matching is
// case-insensitive: exact first, then substring containment in either
// direction (covers entries like "mercedes-benz" vs "mercedes"). The second
// return value is false when the make is unknown.
func ClassifyMake(make string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(make))
	if m == "" {
		return "", false
	}
	if class, ok := vehicleClassification[m]; ok {
		return class, true
	}
	for _, name := range makeNameOrder {
		if strings.Contains(m, name) || strings.Contains(name, m) {
			return vehicleClassification[name], true
		}
	}
	return "", false
}

// BaseRate returns the base rate for a class and coverage level.
func BaseRate(class, coverage string) (float64, bool) {
	rates, ok := baseRates[class]
	if !ok {
		return 0, false
	}
	rate, ok := rates[strings.ToLower(coverage)]
	return rate, ok
}

// AgeMultiplier returns the pricing factor for a vehicle age in years.
func AgeMultiplier(age int) float64 {
	for _, b := range ageBands {
		if age <= b.Ceiling {
			return b.Multiplier
		}
	}
	return oldVehicleMultiplier
}

// MileageMultiplier returns the pricing factor for an odometer reading.
func MileageMultiplier(mileage int) float64 {
	for _, b := range mileageBands {
		if mileage <= b.Ceiling {
			return b.Multiplier
		}
	}
	return extremeMileageMultiplier
}

// TermMultiplier returns the pricing factor for a contract term in months.
func TermMultiplier(months int) (float64, bool) {
	m, ok := termMultipliers[months]
	return m, ok
}

// DeductibleMultiplier returns the pricing factor for a deductible amount.
func DeductibleMultiplier(amount int) (float64, bool) {
	m, ok := deductibleMultipliers[amount]
	return m, ok
}

// Terms lists the supported contract terms in months, ascending.
func Terms() []int {
	return []int{12, 24, 36, 48, 60, 72}
}

// Deductibles lists the supported deductible amounts in USD, ascending.
func Deductibles() []int {
	return []int{0, 50, 100, 200, 500}
}

// CoverageLevels lists the supported coverage levels, cheapest first.
func CoverageLevels() []string {
	return []string{CoverageSilver, CoverageGold, CoveragePlatinum}
}
