package storage

import (
	"context"

	"careeros/pkg/domain"

	"github.com/google/uuid"
)

// UserStorage persists accounts and their verified profiles.
type UserStorage interface {
	// UserByID returns the user or nil.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// CompleteUserProfile creates or updates the user with name, email and
	// profile and marks onboarding as complete. A clash on email with another
	// account returns ErrDuplicate.
	CompleteUserProfile(ctx context.Context, user domain.User) (*domain.User, error)
	// UpdateUserProfile replaces the profile of an existing user. An empty name
	// keeps the stored one. Returns nil when the user does not exist.
	UpdateUserProfile(ctx context.Context, id domain.UserID, name string, profile domain.Profile) (*domain.User, error)
}

// PartialProfileStorage persists uploaded resumes and their extraction state.
type PartialProfileStorage interface {
	// StorePartialProfile inserts p, or refreshes the existing row of the same
	// user and file URL.
	StorePartialProfile(ctx context.Context, p domain.PartialProfile) (*domain.PartialProfile, error)
	// LatestPartialProfile returns the newest partial profile of the user with
	// the given status (any status when empty), or nil.
	LatestPartialProfile(ctx context.Context,
		userID domain.UserID,
		status domain.PartialProfileStatus) (*domain.PartialProfile, error)
	// FailPartialProfile marks a pending partial profile as failed.
	FailPartialProfile(ctx context.Context, id uuid.UUID) error
}
