package ports

import (
	"context"

	"github.com/OSU-CS493-Sp18/auth/internal/domain"
)

// UserDirectory defines persistence for the canonical user record in the
// document store.
type UserDirectory interface {
	// Create persists the user and returns the store-assigned identity.
	// The caller must have hashed the credential before calling.
	Create(ctx context.Context, user *domain.User) (string, error)
	// FindByID returns nil, nil when no user has that identifier. When
	// includeCredential is false the credential field is excluded from the
	// query projection, not fetched and blanked.
	FindByID(ctx context.Context, userID string, includeCredential bool) (*domain.User, error)
	// AppendOwnedLodging adds lodgingID to the user's denormalized lodging
	// list with set semantics (re-appending an existing id is a no-op).
	AppendOwnedLodging(ctx context.Context, userID, lodgingID string) error
}

// LodgingStore defines persistence for lodging rows in the relational store.
// Rows are keyed by the numeric owner identifier and are the authoritative
// record of ownership.
type LodgingStore interface {
	Insert(ctx context.Context, lodging *domain.Lodging) error
	// FindByOwner returns an empty slice, not an error, when the owner has no
	// lodgings.
	FindByOwner(ctx context.Context, ownerID int) ([]domain.Lodging, error)
}
