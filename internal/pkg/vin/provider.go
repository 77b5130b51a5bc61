package vin

import "context"

// Provider is an external VIN decode capability returning a richer record
// than structural decoding can. Implementations must honor the context
// deadline; errors and nil results both fall back to structural decoding.
type Provider interface {
	Decode(ctx context.Context, vin string) (*VehicleInfo, error)
}
