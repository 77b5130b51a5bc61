package vin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

const hondaVIN = "1HGBH41JXMN109186"

// withCheckDigit stamps the correct check character into position 9 so
// synthetic VINs pass validation.
func withCheckDigit(vin string) string {
	b := []byte(vin)
	b[8] = CheckDigit(vin)
	return string(b)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(hondaVIN))
	assert.NoError(t, Validate("  1hgbh41jxmn109186  "), "normalized before checking")
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name string
		vin  string
	}{
		{"too short", "1HGBH41JXMN10918"},
		{"too long", hondaVIN + "7"},
		{"empty", ""},
		{"letter I", "IHGBH41JXMN109186"},
		{"letter O", "1HGBH41JXMN1O9186"},
		{"letter Q", "QHGBH41JXMN109186"},
		{"mutated last digit", "1HGBH41JXMN109185"},
		{"wrong check digit", "1HGBH41J0MN109186"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.vin)
			require.Error(t, err)
			assert.Equal(t, apperror.CodeVINInvalid, apperror.CodeOf(err))
		})
	}
}

func TestCheckDigit(t *testing.T) {
	// Weighted sum for the Honda sample is 340; 340 mod 11 = 10, written 'X'.
	assert.Equal(t, byte('X'), CheckDigit(hondaVIN))
}

func TestDecodeStructural(t *testing.T) {
	info, err := NewDecoder().Decode(context.Background(), hondaVIN)
	require.NoError(t, err)

	assert.Equal(t, hondaVIN, info.VIN)
	assert.Equal(t, "1HG", info.WMI)
	assert.Equal(t, "Honda", info.Make)
	assert.Equal(t, 2021, info.Year)
	assert.Equal(t, "A", info.Class)
	assert.Equal(t, "basic_structure", info.DecodeMethod)
	assert.Equal(t, "Unknown", info.Model)
}

func TestDecodeInvalidVIN(t *testing.T) {
	_, err := NewDecoder().Decode(context.Background(), "NOT-A-VIN")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeVINInvalid, apperror.CodeOf(err))
}

func TestDecodeManufacturerPrefixVariant(t *testing.T) {
	// 4T7 is not a listed WMI but shares Toyota's 4T prefix.
	vin := withCheckDigit("4T7BH41J0MN109186")
	info, err := NewDecoder().Decode(context.Background(), vin)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", info.Make)
	assert.Equal(t, "A", info.Class)
}

func TestDecodeRegionFallback(t *testing.T) {
	tests := []struct {
		vin    string
		region string
	}{
		{"ZZZBH41J0MN109186", "European Manufacturer"},
		{"6ABBH41J0MN109186", "North American Manufacturer"},
		{"LZZBH41J0MN109186", "Asian Manufacturer"},
		{"AAABH41J0MN109186", "African Manufacturer"},
	}

	for _, tt := range tests {
		info, err := NewDecoder().Decode(context.Background(), withCheckDigit(tt.vin))
		require.NoError(t, err)
		assert.Equal(t, tt.region, info.Make, tt.vin)
		assert.Empty(t, info.Class, "region fallbacks carry no rate class")
	}
}

func TestDecodeYear(t *testing.T) {
	assert.Equal(t, 2021, decodeYear('M', 2026))
	assert.Equal(t, 2026, decodeYear('T', 2026))
	// Codes past the current year belong to the previous 30-year cycle.
	assert.Equal(t, 1997, decodeYear('V', 2026))
	assert.Equal(t, 2005, decodeYear('5', 2026))
	assert.Equal(t, 0, decodeYear('0', 2026))
}

type stubProvider struct {
	info *VehicleInfo
	err  error
}

func (s stubProvider) Decode(ctx context.Context, vin string) (*VehicleInfo, error) {
	return s.info, s.err
}

func TestDecodeWithProvider(t *testing.T) {
	d := NewDecoder().WithProvider(stubProvider{info: &VehicleInfo{
		Make:  "Honda",
		Model: "Civic",
		Year:  2021,
	}})

	info, err := d.Decode(context.Background(), hondaVIN)
	require.NoError(t, err)
	assert.Equal(t, "external_api", info.DecodeMethod)
	assert.Equal(t, "Civic", info.Model)
	assert.Equal(t, hondaVIN, info.VIN)
	assert.Equal(t, "A", info.Class)
}

func TestDecodeProviderFailureFallsBack(t *testing.T) {
	d := NewDecoder().WithProvider(stubProvider{err: errors.New("service unavailable")})

	info, err := d.Decode(context.Background(), hondaVIN)
	require.NoError(t, err)
	assert.Equal(t, "basic_structure", info.DecodeMethod)
	assert.Equal(t, "Honda", info.Make)
}

func TestDescribe(t *testing.T) {
	info := &VehicleInfo{VIN: hondaVIN, Make: "Honda", Year: 2021}
	assert.Equal(t, "2021 Honda (1HGBH41JXMN109186)", info.Describe())
}
