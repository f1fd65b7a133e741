package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"adsim/internal/core/domain"
	"adsim/internal/core/port"

	"github.com/google/uuid"
)

// ProfileUseCase implements port.ProfileUseCase on top of a key-value
// profile store. Every change is written through immediately.
type ProfileUseCase struct {
	store port.ProfileStore
	now   func() time.Time
}

func NewProfileUseCase(store port.ProfileStore) *ProfileUseCase {
	return &ProfileUseCase{store: store, now: time.Now}
}

// Login creates a fresh profile. There is no credential check: any
// well-formed email and non-empty name is accepted.
func (u *ProfileUseCase) Login(ctx context.Context, email, name string) (*domain.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", port.ErrInvalidProfile)
	}
	addr, err := parseEmail(email)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	p := domain.UserProfile{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      addr,
		CreatedAt:  now,
		LastActive: now,
	}
	if err = u.store.Put(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (u *ProfileUseCase) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	p, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrProfileNotFound, id)
	}
	return p, nil
}

// Update merges the patch into the stored profile and refreshes
// LastActive.
func (u *ProfileUseCase) Update(ctx context.Context, id string, patch port.ProfilePatch) (*domain.UserProfile, error) {
	p, err := u.store.Update(ctx, id, func(p *domain.UserProfile) error {
		return u.merge(p, patch)
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrProfileNotFound, id)
	}
	return p, nil
}

func (u *ProfileUseCase) merge(p *domain.UserProfile, patch port.ProfilePatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("%w: name is required", port.ErrInvalidProfile)
		}
		p.Name = name
	}
	if patch.Email != nil {
		email, err := parseEmail(*patch.Email)
		if err != nil {
			return err
		}
		p.Email = email
	}
	if patch.Avatar != nil {
		p.Avatar = strings.TrimSpace(*patch.Avatar)
	}
	if patch.Company != nil {
		p.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Role != nil {
		p.Role = strings.TrimSpace(*patch.Role)
	}
	p.LastActive = u.now().UTC()
	return nil
}

// Logout forgets the profile.
func (u *ProfileUseCase) Logout(ctx context.Context, id string) error {
	return u.store.Delete(ctx, id)
}

func parseEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", fmt.Errorf("%w: email %q: %v", port.ErrInvalidProfile, email, err)
	}
	return addr.Address, nil
}
