package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"careeros/pkg/domain"
	"careeros/pkg/logger"
	"careeros/pkg/serrors"
	"careeros/pkg/storage"

	"go.uber.org/zap"
)

// profiles is the concrete implementation of the Profiles interface.
type profiles struct {
	storage storage.Storage
}

// OnboardingStatus reports complete for onboarded users, validated when a
// reviewed resume extraction waits for confirmation and pending otherwise.
func (p profiles) OnboardingStatus(ctx context.Context, userID domain.UserID) (*OnboardingStatus, error) {
	user, err := p.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user != nil && user.OnboardingComplete {
		return &OnboardingStatus{Status: OnboardingComplete}, nil
	}

	partial, err := p.storage.LatestPartialProfile(ctx, userID, domain.PartialProfileStatusValidated)
	if err != nil {
		return nil, fmt.Errorf("could not get partial profile: %w", err)
	}
	if partial != nil {
		return &OnboardingStatus{Status: OnboardingValidated, Profile: partial}, nil
	}

	return &OnboardingStatus{Status: OnboardingPending}, nil
}

func (p profiles) Partial(ctx context.Context, userID domain.UserID) (*domain.PartialProfile, error) {
	partial, err := p.storage.LatestPartialProfile(ctx, userID, domain.PartialProfileStatusValidated)
	if err != nil {
		return nil, fmt.Errorf("could not get partial profile: %w", err)
	}
	if partial == nil {
		return nil, serrors.With(serrors.ErrNotFound, "No partial profile found.")
	}

	return partial, nil
}

// Complete stores the reviewed profile and marks onboarding as done.
func (p profiles) Complete(ctx context.Context,
	userID domain.UserID,
	profile *domain.Profile,
	aiSuggestions json.RawMessage) (*domain.User, error) {
	if profile == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Profile data is required.")
	}
	name := strings.TrimSpace(profile.PersonalInfo.FullName)
	email := strings.TrimSpace(profile.PersonalInfo.Email)
	if name == "" || email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Full name and email are required.")
	}

	profile.AISuggestions = aiSuggestions
	if len(profile.AISuggestions) == 0 || string(profile.AISuggestions) == "null" {
		profile.AISuggestions = json.RawMessage(`{}`)
	}

	user, err := p.storage.CompleteUserProfile(ctx, domain.User{
		ID:      userID,
		Name:    name,
		Email:   email,
		Profile: profile,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email is already used by another account")
		}

		return nil, fmt.Errorf("could not complete profile: %w", err)
	}

	logger.Info(ctx, "onboarding completed", zap.String("userID", userID.String()))

	return user, nil
}

func (p profiles) Full(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	user, err := p.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.Profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Profile not found.")
	}

	return user.Profile, nil
}

// UpdateFull replaces the profile of an onboarded user. The account name
// follows personal_info.full_name when it is set.
func (p profiles) UpdateFull(ctx context.Context,
	userID domain.UserID,
	profile *domain.Profile) (*domain.Profile, error) {
	if profile == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Profile data is required.")
	}

	user, err := p.storage.UpdateUserProfile(ctx, userID, strings.TrimSpace(profile.PersonalInfo.FullName), *profile)
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found.")
	}

	return user.Profile, nil
}

// New creates a new Profiles service backed by the provided storage.
func New(storage storage.Storage) Profiles {
	return &profiles{storage: storage}
}
