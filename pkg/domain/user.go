package domain

import "time"

// UserID identifies a user. It is the subject issued by the identity
// provider, e.g. "user_2abc".
type UserID string

func (id UserID) String() string { return string(id) }

// User is an account together with its verified profile.
type User struct {
	ID                 UserID
	Name               string
	Email              string
	OnboardingComplete bool
	// Profile is nil until the user completes onboarding.
	Profile *Profile
	// RawResumeText is written by the resume worker and kept across profile edits.
	RawResumeText string

	CreatedAt time.Time
	UpdatedAt time.Time
}
