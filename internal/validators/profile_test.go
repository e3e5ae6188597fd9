// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/creator-hub/models"
)

func strPtr(s string) *string { return &s }

func validCreateProfileRequest() models.CreateProfileRequest {
	return models.CreateProfileRequest{
		Name:            "Jane Doe",
		Bio:             strPtr("I make things"),
		ProfileImageURL: strPtr("https://cdn.example.com/jane.png"),
		Skills:          []string{"go", "react"},
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProfileValidator_Create_Valid(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), validCreateProfileRequest())
	assert.NoError(t, err)
}

func TestProfileValidator_Create_OptionalFieldsAbsent(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), models.CreateProfileRequest{Name: "Jane Doe"})
	assert.NoError(t, err)
}

func TestProfileValidator_Create_NameBounds(t *testing.T) {
	v := NewProfileValidator()

	cases := []struct {
		name  string
		valid bool
	}{
		{"", false},
		{"J", false},
		{"  J  ", false},
		{"Jo", true},
		{strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), false},
	}

	for _, tc := range cases {
		request := validCreateProfileRequest()
		request.Name = tc.name

		err := v.Validate(context.Background(), request)
		if tc.valid {
			assert.NoError(t, err, "name %q should be accepted", tc.name)
		} else {
			require.Error(t, err, "name %q should be rejected", tc.name)
			assert.Contains(t, fieldsOf(t, err), FieldName)
		}
	}
}

func TestProfileValidator_Create_BioTooLong(t *testing.T) {
	v := NewProfileValidator()
	request := validCreateProfileRequest()
	request.Bio = strPtr(strings.Repeat("a", 501))

	err := v.Validate(context.Background(), request)
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), FieldBio)
}

func TestProfileValidator_Create_BioAtLimit(t *testing.T) {
	v := NewProfileValidator()
	request := validCreateProfileRequest()
	request.Bio = strPtr(strings.Repeat("a", 500))

	err := v.Validate(context.Background(), request)
	assert.NoError(t, err)
}

func TestProfileValidator_Create_InvalidImageURL(t *testing.T) {
	v := NewProfileValidator()

	for _, raw := range []string{"not a url", "/relative/path", "example.com/no-scheme"} {
		request := validCreateProfileRequest()
		request.ProfileImageURL = strPtr(raw)

		err := v.Validate(context.Background(), request)
		require.Error(t, err, "url %q should be rejected", raw)
		assert.Contains(t, fieldsOf(t, err), FieldProfileImageURL)
	}
}

func TestProfileValidator_Create_SkillLimit(t *testing.T) {
	v := NewProfileValidator()

	request := validCreateProfileRequest()
	request.Skills = make([]string, 20)
	for i := range request.Skills {
		request.Skills[i] = "skill"
	}
	assert.NoError(t, v.Validate(context.Background(), request))

	request.Skills = append(request.Skills, "one too many")
	err := v.Validate(context.Background(), request)
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), FieldSkills)
}

func TestProfileValidator_Create_EmptySkillEntry(t *testing.T) {
	v := NewProfileValidator()
	request := validCreateProfileRequest()
	request.Skills = []string{"go", "   "}

	err := v.Validate(context.Background(), request)
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), FieldSkills)
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestProfileValidator_Update_EmptyUpdateAccepted(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), models.ProfileUpdate{})
	assert.NoError(t, err)
}

func TestProfileValidator_Update_OnlyPresentFieldsChecked(t *testing.T) {
	v := NewProfileValidator()

	// name absent, so even though a stored name could be anything, only the
	// provided bio is validated
	err := v.Validate(context.Background(), models.ProfileUpdate{
		Bio: strPtr("new bio"),
	})
	assert.NoError(t, err)
}

func TestProfileValidator_Update_InvalidName(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), models.ProfileUpdate{Name: strPtr("J")})
	require.Error(t, err)
	assert.Contains(t, fieldsOf(t, err), FieldName)
}

func TestProfileValidator_Update_EmptyImageURLClears(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), models.ProfileUpdate{ProfileImageURL: strPtr("")})
	assert.NoError(t, err)
}

func TestProfileValidator_Update_SkillsReplaced(t *testing.T) {
	v := NewProfileValidator()

	skills := []string{"go"}
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Skills: &skills}))

	empty := []string{}
	assert.NoError(t, v.Validate(context.Background(), models.ProfileUpdate{Skills: &empty}))
}

func TestProfileValidator_UnsupportedType(t *testing.T) {
	v := NewProfileValidator()

	err := v.Validate(context.Background(), "profile")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
