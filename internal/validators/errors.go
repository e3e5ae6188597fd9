package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail           = errors.New("email must be a valid email address")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters long")
	ErrInvalidUsername        = errors.New("username must be at least 3 characters and contain only letters, numbers, underscores and hyphens")
	ErrEmptyPassword          = errors.New("password is required")
	ErrInvalidName            = errors.New("name must be between 2 and 100 characters")
	ErrBioTooLong             = errors.New("bio must be at most 500 characters")
	ErrInvalidProfileImageURL = errors.New("profile image URL must be a valid absolute URL")
	ErrTooManySkills          = errors.New("at most 20 skills are allowed")
	ErrEmptySkill             = errors.New("skills must not contain empty entries")
)
