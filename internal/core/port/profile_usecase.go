package port

import (
	"context"
	"errors"

	"adsim/internal/core/domain"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)

// ProfileUseCase manages the mock user profile.
type ProfileUseCase interface {
	Login(ctx context.Context, email, name string) (*domain.UserProfile, error)
	Get(ctx context.Context, id string) (*domain.UserProfile, error)
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.UserProfile, error)
	Logout(ctx context.Context, id string) error
}

// ProfilePatch holds the editable profile fields; nil means unchanged.
type ProfilePatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Avatar  *string `json:"avatar,omitempty"`
	Company *string `json:"company,omitempty"`
	Role    *string `json:"role,omitempty"`
}
