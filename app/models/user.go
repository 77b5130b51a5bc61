package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/connectedautocare/quoteapi/internal/pkg/auth"
)

const (
	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
	STATUS_DISABLED = "disabled"
)

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email" validate:"required,email,min=5,max=200"`
	Password    string     `json:"-" validate:"required"`
	Role        string     `json:"role" validate:"oneof=admin wholesale_reseller customer"`
	Status      string     `json:"status" validate:"oneof=active inactive disabled"`
	CompanyName string     `json:"company_name,omitempty" validate:"max=200"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a user with a hashed password. The password must pass
// the strength rules before it is hashed.
func CreateUser(email, password, role string) (*User, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}
	pw, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  pw,
		Role:      role,
		Status:    STATUS_ACTIVE,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// IsActive reports whether the user status is active
func (u *User) IsActive() bool {
	return u.Status == STATUS_ACTIVE
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return auth.CheckPasswordHash(password, u.Password)
}

// SetPassword hashes and sets a new password for the user
func (u *User) SetPassword(password string) error {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}
