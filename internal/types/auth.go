// Package types holds the request and response shapes of the HTTP API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the API view of an account. Password material never leaves the
// db package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate checks the RegisterRequest field constraints.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the LoginRequest field constraints.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}
