package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/connectedautocare/quoteapi/app/models"
	"github.com/connectedautocare/quoteapi/internal/pkg/apperror"
	"github.com/connectedautocare/quoteapi/internal/pkg/auth"
	"github.com/connectedautocare/quoteapi/internal/pkg/session"
	"github.com/connectedautocare/quoteapi/internal/pkg/usercontext"
)

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"omitempty,oneof=wholesale_reseller customer"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates a new account. Self-registration is limited to the
// customer and wholesale reseller roles; admins are seeded, never
// registered.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}
	if !auth.ValidateEmail(req.Email) {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid email format")
	}

	role := req.Role
	if role == "" {
		role = auth.RoleCustomer
	}

	user, err := models.CreateUser(req.Email, req.Password, role)
	if err != nil {
		var weak *auth.WeakPasswordError
		if errors.As(err, &weak) {
			return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), weak.Reason)
		}
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid registration data")
	}
	user.CompanyName = req.CompanyName

	if err := models.GetUserStore().Add(user); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return respondError(c, fiber.StatusConflict, string(apperror.CodeInvalidInput), "Email already registered")
		}
		return respondError(c, fiber.StatusInternalServerError, string(apperror.CodeInvalidInput), "Registration failed")
	}

	token, err := auth.DefaultTokenService().Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, string(apperror.CodeInvalidInput), "Token generation failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user":  user,
		},
	})
}

// HandleLogin verifies credentials and issues a signed token.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, string(apperror.CodeInvalidInput), "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	store := models.GetUserStore()
	user, err := store.GetByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		// One message for both cases; do not leak which one failed.
		return respondError(c, fiber.StatusUnauthorized, "", "Invalid email or password")
	}
	if !user.IsActive() {
		return respondError(c, fiber.StatusForbidden, "", "Account is not active")
	}

	token, err := auth.DefaultTokenService().Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "", "Token generation failed")
	}

	store.RecordLogin(user)
	session.Touch(user.ID)

	return respondOK(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// HandleLogout drops the caller's activity record. Tokens are stateless,
// so the client discards the token; the server only clears tracking.
func HandleLogout(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return respondError(c, fiber.StatusUnauthorized, "", "Authentication required")
	}

	session.Clear(usercontext.GetUserID(c))
	return respondOK(c, fiber.Map{"message": "Logged out"})
}

// HandleProfile returns the authenticated caller's account.
func HandleProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return respondError(c, fiber.StatusUnauthorized, "", "Authentication required")
	}

	user, err := models.GetUserStore().GetByID(userCtx.UserID)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "", "User not found")
	}

	profile := fiber.Map{
		"user":        user,
		"permissions": rolePermissions(user.Role),
	}
	if last, ok := session.LastActivity(user.ID); ok {
		profile["last_activity"] = last.Format(time.RFC3339)
	}
	return respondOK(c, profile)
}

// rolePermissions lists the named permissions a role carries, for display.
func rolePermissions(role string) []auth.Permission {
	all := []auth.Permission{
		auth.PermissionViewWholesalePricing,
		auth.PermissionViewRetailPricing,
		auth.PermissionCreateQuotes,
		auth.PermissionManageCustomers,
		auth.PermissionViewAnalytics,
		auth.PermissionViewOwnPolicies,
	}
	granted := make([]auth.Permission, 0, len(all))
	for _, p := range all {
		if auth.HasPermission(role, p) {
			granted = append(granted, p)
		}
	}
	return granted
}
