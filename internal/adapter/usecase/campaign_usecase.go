package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"adsim/internal/core/domain"
	"adsim/internal/core/port"
	"adsim/internal/core/simulation"
	"adsim/internal/core/wizard"

	"github.com/google/uuid"
)

// ProgressSettings shapes the cosmetic progress shown while a report is
// prepared. A zero Interval emits every value at once.
type ProgressSettings struct {
	Interval time.Duration
	Step     int
}

// CampaignUseCase implements port.CampaignUseCase. It threads wizard
// snapshots through the session repository: every mutation loads the
// stored snapshot, derives a new one and saves it.
type CampaignUseCase struct {
	repo     port.SessionRepository
	profiles port.ProfileStore
	engine   *simulation.Engine
	progress ProgressSettings
	logger   *slog.Logger
	now      func() time.Time

	// mu serializes load-modify-save cycles so concurrent requests on one
	// session never lose updates.
	mu sync.Mutex
}

// NewCampaignUseCase wires the use case. profiles may be nil, in which
// case owner counters are not maintained.
func NewCampaignUseCase(
	repo port.SessionRepository,
	profiles port.ProfileStore,
	engine *simulation.Engine,
	progress ProgressSettings,
	logger *slog.Logger,
) *CampaignUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		repo:     repo,
		profiles: profiles,
		engine:   engine,
		progress: progress,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *CampaignUseCase) StartSession(ctx context.Context, ownerID string) (*domain.Session, error) {
	st := wizard.New()
	now := u.now().UTC()
	s := &domain.Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Step:      int(st.Step),
		Config:    st.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *CampaignUseCase) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return u.load(ctx, id)
}

func (u *CampaignUseCase) SetPlatform(ctx context.Context, id string, p domain.Platform) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithPlatform(p) })
}

func (u *CampaignUseCase) SetObjective(ctx context.Context, id, objective string) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithObjective(objective) })
}

func (u *CampaignUseCase) SetCampaignType(ctx context.Context, id, campaignType string) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithCampaignType(campaignType) })
}

func (u *CampaignUseCase) UpdateTargeting(ctx context.Context, id string, patch wizard.TargetingPatch) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithTargeting(patch) })
}

func (u *CampaignUseCase) UpdateCreative(ctx context.Context, id string, patch wizard.CreativePatch) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithCreative(patch) })
}

func (u *CampaignUseCase) UpdateBudget(ctx context.Context, id string, patch wizard.BudgetPatch) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.WithBudget(patch) })
}

func (u *CampaignUseCase) Next(ctx context.Context, id string) (*domain.Session, error) {
	return u.apply(ctx, id, wizard.State.Next)
}

func (u *CampaignUseCase) Back(ctx context.Context, id string) (*domain.Session, error) {
	return u.apply(ctx, id, func(st wizard.State) (wizard.State, error) { return st.Back(), nil })
}

// Reset starts a new campaign on the same session.
func (u *CampaignUseCase) Reset(ctx context.Context, id string) (*domain.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	st := wizard.FromSession(s).Reset()
	s.Step = int(st.Step)
	s.Config = st.Config
	s.Report = nil
	s.Simulations = 0
	s.UpdatedAt = u.now().UTC()
	if err = u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Simulate runs the engine for a session at the results step. The progress
// ticker and the engine run concurrently; the report is returned once both
// have finished. The report is stored only if the session configuration
// did not change while it was being prepared.
func (u *CampaignUseCase) Simulate(ctx context.Context, id string, seed *int64, onProgress func(percent int)) (*domain.Report, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if wizard.Step(s.Step) != wizard.StepResults {
		return nil, fmt.Errorf("%w: session %s is at step %d", port.ErrNotAtResults, id, s.Step)
	}
	if _, err = wizard.Complete(s.Config); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}

	progressCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	progressDone := make(chan error, 1)
	go func() {
		progressDone <- simulation.Progress(progressCtx, u.progress.Interval, u.progress.Step, onProgress)
	}()

	var report domain.Report
	if seed != nil {
		report = u.engine.Replay(s.Config, *seed)
	} else if report, err = u.engine.Run(s.Config); err != nil {
		cancel()
		<-progressDone
		return nil, fmt.Errorf("run simulation: %w", err)
	}

	if err = <-progressDone; err != nil {
		return nil, err
	}

	first, err := u.storeReport(ctx, s, report)
	if err != nil {
		return nil, err
	}
	if first {
		u.countCampaign(ctx, s.OwnerID)
	}
	u.logger.Debug("campaign simulated",
		slog.String("session", id),
		slog.Int64("seed", report.Seed),
		slog.Int64("impressions", report.Metrics.Impressions),
	)
	return &report, nil
}

// storeReport attaches report to the stored session and reports whether
// this was the session's first simulation.
func (u *CampaignUseCase) storeReport(ctx context.Context, simulated *domain.Session, report domain.Report) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, simulated.ID)
	if err != nil {
		return false, err
	}
	if s.Step != simulated.Step || !reflect.DeepEqual(s.Config, simulated.Config) {
		return false, nil
	}
	first := s.Simulations == 0
	s.Simulations++
	s.Report = &report
	s.UpdatedAt = u.now().UTC()
	if err = u.repo.Save(ctx, s); err != nil {
		return false, err
	}
	return first, nil
}

// countCampaign bumps the owner's campaign counter. A failure here does
// not invalidate the report, so it is only logged.
func (u *CampaignUseCase) countCampaign(ctx context.Context, ownerID string) {
	if ownerID == "" || u.profiles == nil {
		return
	}
	p, err := u.profiles.Update(ctx, ownerID, func(p *domain.UserProfile) error {
		p.CampaignsCreated++
		p.LastActive = u.now().UTC()
		return nil
	})
	if err != nil {
		u.logger.Error("update profile error", slog.String("profile", ownerID), slog.Any("error", err))
		return
	}
	if p == nil {
		u.logger.Warn("session owner has no profile", slog.String("profile", ownerID))
	}
}

// apply runs a wizard transition on the stored snapshot. A transition
// that changes the configuration discards the stale report and rewinds the
// session to the first step it invalidated.
func (u *CampaignUseCase) apply(ctx context.Context, id string, next func(wizard.State) (wizard.State, error)) (*domain.Session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := next(wizard.FromSession(s))
	if err != nil {
		return nil, err
	}
	if !reflect.DeepEqual(st.Config, s.Config) {
		s.Report = nil
		st = st.Rewind()
	}
	s.Step = int(st.Step)
	s.Config = st.Config
	s.UpdatedAt = u.now().UTC()
	if err = u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *CampaignUseCase) load(ctx context.Context, id string) (*domain.Session, error) {
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrSessionNotFound, id)
	}
	return s, nil
}
