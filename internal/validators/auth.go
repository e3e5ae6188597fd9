package validators

import (
	"context"
	"net/mail"
	"regexp"

	"github.com/MKhiriev/creator-hub/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldUsername = "username"
)

const (
	minPasswordLength = 8
	minUsernameLength = 3
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// AuthValidator validates signup and login payloads.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateSignupRequest(_ context.Context, request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldUsername}
	}

	var validationErr ValidationError
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				validationErr.add(FieldEmail, ErrInvalidEmail)
			}
		case FieldPassword:
			if len(request.Password) < minPasswordLength {
				validationErr.add(FieldPassword, ErrPasswordTooShort)
			}
		case FieldUsername:
			if len(request.Username) < minUsernameLength || !usernamePattern.MatchString(request.Username) {
				validationErr.add(FieldUsername, ErrInvalidUsername)
			}
		default:
			return ErrUnknownField
		}
	}

	return validationErr.errOrNil()
}

func (v *AuthValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var validationErr ValidationError
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				validationErr.add(FieldEmail, ErrInvalidEmail)
			}
		case FieldPassword:
			if request.Password == "" {
				validationErr.add(FieldPassword, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return validationErr.errOrNil()
}

// isValidEmail accepts plain addresses only; display names ("Jane <j@x.io>")
// are rejected.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email
}
