package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/env"
	"github.com/connectedautocare/quoteapi/internal/pkg/metrics/counter"
	"github.com/connectedautocare/quoteapi/internal/pkg/vin"
)

type vinDecodeRequest struct {
	VIN string `json:"vin"`
}

var (
	vinDecoder     *vin.Decoder
	vinDecoderOnce sync.Once
)

// getVINDecoder builds the process-wide decoder. The external NHTSA
// provider is attached only when opted in, so the default configuration
// never makes outbound calls.
func getVINDecoder() *vin.Decoder {
	vinDecoderOnce.Do(func() {
		vinDecoder = vin.NewDecoder()
		if env.GetEnv("VIN_PROVIDER", "") == "nhtsa" {
			vinDecoder.WithProvider(vin.NewNHTSAProvider())
		}
	})
	return vinDecoder
}

// HandleVINDecode validates a VIN and returns decoded vehicle information.
func HandleVINDecode(c *fiber.Ctx) error {
	var req vinDecodeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if req.VIN == "" {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeVINInvalid), "VIN is required")
	}

	info, err := getVINDecoder().Decode(c.Context(), req.VIN)
	if err != nil {
		return respondDomainError(c, err)
	}

	_ = counter.AddQuote("vin_decode")
	return respondOK(c, info)
}
