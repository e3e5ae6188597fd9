package validators

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/creator-hub/models"
)

// Field name constants for profile payloads.
const (
	FieldName            = "name"
	FieldBio             = "bio"
	FieldProfileImageURL = "profileImageUrl"
	FieldSkills          = "skills"
)

const (
	minNameLength = 2
	maxNameLength = 100
	maxBioLength  = 500
	maxSkillCount = 20
)

// ProfileValidator validates profile creation and update payloads. For
// updates only the fields present in the payload are checked; absent fields
// are left to keep their stored values.
type ProfileValidator struct {
}

func NewProfileValidator() Validator {
	return &ProfileValidator{}
}

func (v *ProfileValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateProfileRequest:
		return v.validateCreateProfileRequest(ctx, value, fields...)
	case *models.CreateProfileRequest:
		return v.validateCreateProfileRequest(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProfileValidator) validateCreateProfileRequest(_ context.Context, request models.CreateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBio, FieldProfileImageURL, FieldSkills}
	}

	var validationErr ValidationError
	for _, f := range fields {
		switch f {
		case FieldName:
			if !isValidName(request.Name) {
				validationErr.add(FieldName, ErrInvalidName)
			}
		case FieldBio:
			if request.Bio != nil && utf8.RuneCountInString(*request.Bio) > maxBioLength {
				validationErr.add(FieldBio, ErrBioTooLong)
			}
		case FieldProfileImageURL:
			if request.ProfileImageURL != nil && !isValidAbsoluteURL(*request.ProfileImageURL) {
				validationErr.add(FieldProfileImageURL, ErrInvalidProfileImageURL)
			}
		case FieldSkills:
			if err := validateSkills(request.Skills); err != nil {
				validationErr.add(FieldSkills, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return validationErr.errOrNil()
}

func (v *ProfileValidator) validateProfileUpdate(_ context.Context, update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBio, FieldProfileImageURL, FieldSkills}
	}

	var validationErr ValidationError
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && !isValidName(*update.Name) {
				validationErr.add(FieldName, ErrInvalidName)
			}
		case FieldBio:
			if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > maxBioLength {
				validationErr.add(FieldBio, ErrBioTooLong)
			}
		case FieldProfileImageURL:
			// an empty string clears the image, so only non-empty values are parsed
			if update.ProfileImageURL != nil && *update.ProfileImageURL != "" && !isValidAbsoluteURL(*update.ProfileImageURL) {
				validationErr.add(FieldProfileImageURL, ErrInvalidProfileImageURL)
			}
		case FieldSkills:
			if update.Skills != nil {
				if err := validateSkills(*update.Skills); err != nil {
					validationErr.add(FieldSkills, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return validationErr.errOrNil()
}

func isValidName(name string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	return length >= minNameLength && length <= maxNameLength
}

func isValidAbsoluteURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func validateSkills(skills []string) error {
	if len(skills) > maxSkillCount {
		return ErrTooManySkills
	}
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			return ErrEmptySkill
		}
	}
	return nil
}
