package profile

import (
	"context"
	"encoding/json"

	"careeros/pkg/domain"
)

// Onboarding states reported to the web app.
const (
	OnboardingComplete  = "complete"
	OnboardingValidated = "validated"
	OnboardingPending   = "pending"
)

// OnboardingStatus tells the web app which onboarding screen to show.
type OnboardingStatus struct {
	Status string `json:"status"`
	// Profile is the validated partial profile awaiting review.
	Profile *domain.PartialProfile `json:"profile,omitempty"`
}

//go:generate mockgen -package mockprofile -source=interface.go -destination=mock/mockprofile.go *
type Profiles interface {
	OnboardingStatus(ctx context.Context, userID domain.UserID) (*OnboardingStatus, error)
	Partial(ctx context.Context, userID domain.UserID) (*domain.PartialProfile, error)
	Complete(ctx context.Context,
		userID domain.UserID,
		profile *domain.Profile,
		aiSuggestions json.RawMessage) (*domain.User, error)
	Full(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	UpdateFull(ctx context.Context, userID domain.UserID, profile *domain.Profile) (*domain.Profile, error)
}
