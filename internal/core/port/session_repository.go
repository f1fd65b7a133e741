package port

import (
	"context"

	"adsim/internal/core/domain"
)

// SessionRepository persists wizard sessions. Implementations must be safe
// for concurrent use. Get returns nil, nil for an unknown id.
type SessionRepository interface {
	// Save inserts or replaces the session.
	Save(ctx context.Context, s *domain.Session) error
	// Get returns the session with the given id.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes a session; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// ProfileStore is the key-value persistence for user profiles. The profile
// is written on every change and read back on demand. Get returns nil, nil
// for an unknown id.
type ProfileStore interface {
	Put(ctx context.Context, p domain.UserProfile) error
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	// Update applies fn to the stored profile and writes the result back
	// atomically with respect to other Update and Put calls. It returns
	// nil, nil without calling fn when the profile does not exist. An
	// error from fn aborts the write and is returned as is.
	Update(ctx context.Context, id string, fn func(*domain.UserProfile) error) (*domain.UserProfile, error)
	Delete(ctx context.Context, id string) error
}
