package v1handler

import (
	"encoding/json"
	"net/http"

	"careeros/internal/profile"
	"careeros/pkg/domain"
	"careeros/pkg/serrors"
)

type CompleteProfileRequest struct {
	ProfileData   *domain.Profile `json:"profileData"`
	AISuggestions json.RawMessage `json:"ai_suggestions"`
}

type UpdateProfileRequest struct {
	ProfileData *domain.Profile `json:"profileData"`
}

type ProfileStatusResponse struct {
	Status  string          `json:"status"`
	Profile *domain.Profile `json:"profile,omitempty"`
}

// OnboardingStatus tells the web app which onboarding step the user is on.
func (h Handler) OnboardingStatus(w http.ResponseWriter, r *http.Request) error {
	status, err := h.deps.Profiles.OnboardingStatus(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, status)

	return nil
}

// PartialProfile returns the latest validated extraction awaiting review.
func (h Handler) PartialProfile(w http.ResponseWriter, r *http.Request) error {
	partial, err := h.deps.Profiles.Partial(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, partial)

	return nil
}

// CompleteProfile stores the reviewed profile and finishes onboarding.
func (h Handler) CompleteProfile(w http.ResponseWriter, r *http.Request) error {
	var req CompleteProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	if _, err := h.deps.Profiles.Complete(r.Context(),
		GetUserIDFromContext(r.Context()),
		req.ProfileData,
		req.AISuggestions); err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusCreated, ProfileStatusResponse{Status: profile.OnboardingComplete})

	return nil
}

func (h Handler) FullProfile(w http.ResponseWriter, r *http.Request) error {
	p, err := h.deps.Profiles.Full(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, p)

	return nil
}

// UpdateFullProfile replaces the stored profile.
func (h Handler) UpdateFullProfile(w http.ResponseWriter, r *http.Request) error {
	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if req.ProfileData == nil {
		return serrors.With(serrors.ErrBadRequest, "Profile data is required.")
	}

	p, err := h.deps.Profiles.UpdateFull(r.Context(), GetUserIDFromContext(r.Context()), req.ProfileData)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, ProfileStatusResponse{Status: "updated", Profile: p})

	return nil
}
