// Package apperror defines the machine-readable error taxonomy shared by the
// quote calculators and the VIN decoder. Every domain failure carries a
// stable code that maps onto the API error envelope.
package apperror

import "errors"

// Code identifies a class of domain failure.
type Code string

const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeProductNotFound     Code = "PRODUCT_NOT_FOUND"
	CodeVehicleNotSupported Code = "VEHICLE_NOT_SUPPORTED"
	CodeVINInvalid          Code = "VIN_INVALID"
	CodeRatingError         Code = "RATING_ERROR"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the domain code from err, or empty when err is not a
// domain error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
