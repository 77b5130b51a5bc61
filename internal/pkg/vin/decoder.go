// Package vin validates and decodes 17-character Vehicle Identification
// Numbers: structural checks, the ISO 3779 check digit, manufacturer lookup
// via the World Manufacturer Identifier, and model year decoding.
package vin

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/rating"
)

// vinPattern excludes I, O and Q, which are never used in VINs.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// checkWeights are the per-position weights of the check digit sum.
// Position 9 (the check digit itself) carries weight 0.
var checkWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// transliteration maps VIN letters to their numeric check values.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// wmiManufacturers maps exact World Manufacturer Identifiers (first three
// characters) to manufacturer names.
var wmiManufacturers = map[string]string{
	"1HG": "Honda",
	"1HT": "Honda",
	"2HG": "Honda",
	"3HG": "Honda",
	"JHM": "Honda",
	"1G1": "Chevrolet",
	"1GC": "Chevrolet",
	"1GM": "Chevrolet",
	"2G1": "Chevrolet",
	"3G1": "Chevrolet",
	"1G6": "Cadillac",
	"1FA": "Ford",
	"1FT": "Ford",
	"4T1": "Toyota",
	"4T3": "Toyota",
	"5TD": "Toyota",
	"JTD": "Toyota",
	"KMH": "Hyundai",
	"WBA": "BMW",
	"WBS": "BMW",
	"WDD": "Mercedes-Benz",
	"WDC": "Mercedes-Benz",
}

// wmiPrefixOrder lists the known WMIs sorted, for deterministic prefix
// matching in decodeManufacturer.
var wmiPrefixOrder = func() []string {
	keys := make([]string, 0, len(wmiManufacturers))
	for k := range wmiManufacturers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// yearCodes maps the model-year character (position 10) onto the 2010-2039
// cycle. Codes repeat every 30 years; Decode subtracts 30 when the naive
// year lands in the future.
var yearCodes = map[byte]int{
	'A': 2010, 'B': 2011, 'C': 2012, 'D': 2013, 'E': 2014, 'F': 2015,
	'G': 2016, 'H': 2017, 'J': 2018, 'K': 2019, 'L': 2020, 'M': 2021,
	'N': 2022, 'P': 2023, 'R': 2024, 'S': 2025, 'T': 2026, 'V': 2027,
	'W': 2028, 'X': 2029, 'Y': 2030,
	'1': 2031, '2': 2032, '3': 2033, '4': 2034, '5': 2035,
	'6': 2036, '7': 2037, '8': 2038, '9': 2039,
}

// VehicleInfo is the decoded vehicle record.
type VehicleInfo struct {
	VIN          string `json:"vin"`
	WMI          string `json:"wmi"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	BodyStyle    string `json:"body_style"`
	FuelType     string `json:"fuel_type"`
	Class        string `json:"class"`
	DecodeMethod string `json:"decode_method"`
}

// Decoder decodes VINs, optionally delegating to an external provider for
// richer records. A nil provider means structural decoding only.
type Decoder struct {
	provider        Provider
	providerTimeout time.Duration
}

// NewDecoder returns a decoder with no external provider.
func NewDecoder() *Decoder {
	return &Decoder{providerTimeout: 5 * time.Second}
}

// WithProvider attaches an external decode provider.
func (d *Decoder) WithProvider(p Provider) *Decoder {
	d.provider = p
	return d
}

// Validate checks structure and check digit. It returns nil for a valid VIN
// and a VIN_INVALID domain error describing the first failure otherwise.
func Validate(vin string) error {
	vin = Normalize(vin)

	if len(vin) != 17 {
		return apperror.New(apperror.CodeVINInvalid, "VIN must be exactly 17 characters")
	}
	if !vinPattern.MatchString(vin) {
		return apperror.New(apperror.CodeVINInvalid, "VIN contains invalid characters (I, O, Q not allowed)")
	}
	if CheckDigit(vin) != vin[8] {
		return apperror.New(apperror.CodeVINInvalid, "Invalid VIN check digit")
	}
	return nil
}

// Normalize upper-cases and trims a raw VIN string.
func Normalize(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// CheckDigit computes the expected check character for position 9 of a
// structurally valid VIN: the weighted sum of all transliterated characters
// mod 11, with remainder 10 written as 'X'.
func CheckDigit(vin string) byte {
	sum := 0
	for i := 0; i < 17; i++ {
		ch := vin[i]
		value := 0
		if ch >= '0' && ch <= '9' {
			value = int(ch - '0')
		} else {
			value = transliteration[ch]
		}
		sum += value * checkWeights[i]
	}
	remainder := sum % 11
	if remainder == 10 {
		return 'X'
	}
	return byte('0' + remainder)
}

// Decode validates the VIN and extracts vehicle information. When an
// external provider is configured it is tried first with a short timeout;
// any provider failure falls back silently to structural decoding.
func (d *Decoder) Decode(ctx context.Context, vin string) (*VehicleInfo, error) {
	vin = Normalize(vin)
	if err := Validate(vin); err != nil {
		return nil, err
	}

	if d.provider != nil {
		pctx, cancel := context.WithTimeout(ctx, d.providerTimeout)
		info, err := d.provider.Decode(pctx, vin)
		cancel()
		if err == nil && info != nil {
			info.VIN = vin
			info.DecodeMethod = "external_api"
			fillClass(info)
			return info, nil
		}
		if err != nil {
			log.Printf("vin: external decode failed for %s, using structural decode: %v", vin, err)
		}
	}

	wmi := vin[:3]
	info := &VehicleInfo{
		VIN:          vin,
		WMI:          wmi,
		Make:         decodeManufacturer(wmi),
		Model:        "Unknown",
		Year:         decodeYear(vin[9], time.Now().Year()),
		Engine:       "Unknown",
		Transmission: "Unknown",
		BodyStyle:    "Unknown",
		FuelType:     "Unknown",
		DecodeMethod: "basic_structure",
	}
	fillClass(info)
	return info, nil
}

// fillClass resolves the rate class from the decoded make, sharing the VSC
// classification table. Region fallbacks like "European Manufacturer" are
// not in that table and leave the class empty.
func fillClass(info *VehicleInfo) {
	if class, ok := rating.ClassifyMake(info.Make); ok {
		info.Class = class
	}
}

func decodeManufacturer(wmi string) string {
	if name, ok := wmiManufacturers[wmi]; ok {
		return name
	}
	// Two-character prefix match catches plant-code variants of known WMIs.
	// Sorted so that prefixes shared by two manufacturers resolve the same
	// way every time.
	for _, known := range wmiPrefixOrder {
		if wmi[:2] == known[:2] {
			return wmiManufacturers[known]
		}
	}
	return regionFallback(wmi[0])
}

func regionFallback(first byte) string {
	switch {
	case first >= '0' && first <= '9':
		return "North American Manufacturer"
	case first >= 'A' && first <= 'H':
		return "African Manufacturer"
	case first >= 'J' && first <= 'L':
		return "Asian Manufacturer"
	case first >= 'M' && first <= 'P', first >= 'R' && first <= 'Z':
		return "European Manufacturer"
	}
	return "Unknown Manufacturer"
}

// decodeYear maps the model-year character against the 2010-2039 cycle and
// shifts back one 30-year cycle when the naive year is in the future.
func decodeYear(code byte, currentYear int) int {
	year, ok := yearCodes[code]
	if !ok {
		return 0
	}
	if year > currentYear {
		year -= 30
	}
	return year
}

// Describe renders a one-line summary, handy for logs.
func (v *VehicleInfo) Describe() string {
	return fmt.Sprintf("%d %s (%s)", v.Year, v.Make, v.VIN)
}
