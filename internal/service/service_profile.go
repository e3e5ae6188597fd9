package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/store"
	"github.com/MKhiriev/creator-hub/internal/validators"
	"github.com/MKhiriev/creator-hub/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	profileRepository store.ProfileRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService backed by the given repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validators.NewProfileValidator(),
		logger:            logger,
	}
}

// Create creates the profile owned by userID.
//
// Returns the persisted profile (username included) or:
//   - A *validators.ValidationError describing every failing field.
//   - store.ErrProfileAlreadyExists (wrapped) when the owner already has one.
func (p *profileService) Create(ctx context.Context, userID uuid.UUID, request models.CreateProfileRequest) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("invalid profile data provided")
		return models.Profile{}, err
	}

	created, err := p.profileRepository.CreateProfile(ctx, models.Profile{
		UserID:          userID,
		Name:            request.Name,
		Bio:             request.Bio,
		ProfileImageURL: request.ProfileImageURL,
		Skills:          request.Skills,
	})
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("profile creation ended with error")
		return models.Profile{}, fmt.Errorf("profile creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update to the profile owned by userID. Fields
// absent from update keep their stored values; a present Skills slice
// replaces the stored list wholesale.
func (p *profileService) Update(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("invalid profile update provided")
		return models.Profile{}, err
	}

	updated, err := p.profileRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("profile update ended with error")
		return models.Profile{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updated, nil
}

// GetMine returns the caller's own profile. A missing profile is not an
// error: the method returns nil so the caller can render an explicit "no
// profile yet" state.
func (p *profileService) GetMine(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		log.Err(err).Str("userID", userID.String()).Msg("own profile lookup failed")
		return nil, fmt.Errorf("own profile lookup failed: %w", err)
	}

	return &profile, nil
}

// GetByUsername returns the public profile of the given username, or a
// wrapped store.ErrProfileNotFound.
func (p *profileService) GetByUsername(ctx context.Context, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.GetByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile lookup by username failed")
		return models.Profile{}, fmt.Errorf("profile lookup by username failed: %w", err)
	}

	return profile, nil
}

// ListAll returns every profile in stable creation order, narrowed by
// skillsFilter when one is given.
//
// The filter is a comma-separated list of terms. Terms are trimmed and
// lowercased; a profile matches when any of its skills contains any term as a
// substring. An empty filter returns everything.
func (p *profileService) ListAll(ctx context.Context, skillsFilter string) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	profiles, err := p.profileRepository.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("profile listing failed")
		return nil, fmt.Errorf("profile listing failed: %w", err)
	}

	if skillsFilter == "" {
		return profiles, nil
	}

	terms := strings.Split(skillsFilter, ",")
	for i, term := range terms {
		terms[i] = strings.ToLower(strings.TrimSpace(term))
	}

	filtered := make([]models.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if profileMatchesAnyTerm(profile, terms) {
			filtered = append(filtered, profile)
		}
	}

	return filtered, nil
}

// profileMatchesAnyTerm reports whether any of the profile's skills contains
// any of the given lowercase terms as a substring. A profile without skills
// never matches.
func profileMatchesAnyTerm(profile models.Profile, terms []string) bool {
	for _, skill := range profile.Skills {
		lowered := strings.ToLower(skill)
		for _, term := range terms {
			if strings.Contains(lowered, term) {
				return true
			}
		}
	}
	return false
}
