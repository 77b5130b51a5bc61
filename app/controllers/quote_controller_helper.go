package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
)

// validate is shared by all request DTOs.
var validate = validator.New()

// respondOK wraps data in the standard success envelope.
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// respondError emits the standard error envelope. Auth failures carry no
// machine code, only a message, so code is optional.
func respondError(c *fiber.Ctx, status int, code, message string) error {
	body := fiber.Map{
		"success": false,
		"error":   message,
	}
	if code != "" {
		body["code"] = code
	}
	return c.Status(status).JSON(body)
}

// respondValidationError reports DTO validation failures field by field.
func respondValidationError(c *fiber.Ctx, err error) error {
	details := fiber.Map{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Request validation failed",
		"code":    string(apperror.CodeInvalidInput),
		"details": details,
	})
}

// respondDomainError maps calculator and decoder failures onto HTTP status
// codes. Domain failures are never fatal; anything without a code is an
// unexpected internal error.
func respondDomainError(c *fiber.Ctx, err error) error {
	code := apperror.CodeOf(err)
	switch code {
	case apperror.CodeInvalidInput, apperror.CodeVINInvalid:
		return respondError(c, fiber.StatusBadRequest, string(code), err.Error())
	case apperror.CodeProductNotFound:
		return respondError(c, fiber.StatusNotFound, string(code), err.Error())
	case apperror.CodeVehicleNotSupported, apperror.CodeRatingError:
		return respondError(c, fiber.StatusUnprocessableEntity, string(code), err.Error())
	}
	return respondError(c, fiber.StatusInternalServerError, string(apperror.CodeRatingError), "Quote generation failed")
}
