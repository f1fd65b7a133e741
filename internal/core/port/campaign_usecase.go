package port

import (
	"context"
	"errors"

	"adsim/internal/core/domain"
	"adsim/internal/core/wizard"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotAtResults    = errors.New("session is not at the results step")
)

// CampaignUseCase drives wizard sessions. Each mutation loads the stored
// snapshot, derives the next one through the wizard and saves it. This is
// the primary port used by the HTTP adapter.
type CampaignUseCase interface {
	// StartSession creates a session at step 1 with default configuration.
	// ownerID may be empty for anonymous sessions.
	StartSession(ctx context.Context, ownerID string) (*domain.Session, error)
	// GetSession returns a stored session or ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	SetPlatform(ctx context.Context, id string, p domain.Platform) (*domain.Session, error)
	SetObjective(ctx context.Context, id, objective string) (*domain.Session, error)
	SetCampaignType(ctx context.Context, id, campaignType string) (*domain.Session, error)
	UpdateTargeting(ctx context.Context, id string, patch wizard.TargetingPatch) (*domain.Session, error)
	UpdateCreative(ctx context.Context, id string, patch wizard.CreativePatch) (*domain.Session, error)
	UpdateBudget(ctx context.Context, id string, patch wizard.BudgetPatch) (*domain.Session, error)

	// Next advances past the current step if its requirements are met.
	Next(ctx context.Context, id string) (*domain.Session, error)
	// Back returns to the previous step without clearing anything.
	Back(ctx context.Context, id string) (*domain.Session, error)
	// Reset discards the configuration and report and returns to step 1.
	Reset(ctx context.Context, id string) (*domain.Session, error)

	// Simulate produces the report for a session at the results step.
	// onProgress, when not nil, receives the cosmetic progress percentages
	// while the report is prepared. A nil seed draws a fresh one.
	Simulate(ctx context.Context, id string, seed *int64, onProgress func(percent int)) (*domain.Report, error)
}
