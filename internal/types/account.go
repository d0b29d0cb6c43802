// Package types provides the request and response contracts exchanged with the CareerCore API.
package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// User is the account record owned by the server.
type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	School    string     `json:"school"`
	Major     string     `json:"major"`
	CreatedAt *Timestamp `json:"created_at,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	School   string `json:"school"`
	Major    string `json:"major"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate is the partial profile update accepted by PATCH /auth/me.
// Email and id cannot be changed from this surface.
type UserUpdate struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	School *string `json:"school,omitempty"`
	Major  *string `json:"major,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.School == nil && u.Major == nil
}

// ValidationError is raised before any network call when a request is not sendable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validateStruct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// Validate validates the UserUpdate using the validator.
func (u *UserUpdate) Validate() error {
	if u.Empty() {
		return &ValidationError{Message: "nothing to update: provide name, school or major"}
	}
	return validateStruct(u)
}

var validate = validator.New()

// validateStruct runs the struct validator and converts the first failure into a ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	return &ValidationError{Field: field, Message: describeTag(fe)}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
