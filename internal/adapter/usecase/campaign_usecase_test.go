package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"adsim/internal/adapter/memory"
	"adsim/internal/core/domain"
	"adsim/internal/core/port"
	"adsim/internal/core/port/mocks"
	"adsim/internal/core/simulation"
	"adsim/internal/core/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTestEngine() *simulation.Engine {
	return simulation.NewEngine(
		simulation.WithFixedSeed(7),
		simulation.WithClock(func() time.Time { return fixedNow }),
	)
}

func newCampaignUseCase(repo port.SessionRepository, profiles port.ProfileStore) *CampaignUseCase {
	u := NewCampaignUseCase(repo, profiles, newTestEngine(), ProgressSettings{Step: 25}, nil)
	u.now = func() time.Time { return fixedNow }
	return u
}

// walkToResults drives a fresh session through every step with a valid
// Google search campaign.
func walkToResults(t *testing.T, u *CampaignUseCase, ownerID string) *domain.Session {
	t.Helper()
	ctx := context.Background()

	s, err := u.StartSession(ctx, ownerID)
	require.NoError(t, err)
	id := s.ID

	steps := []func() (*domain.Session, error){
		func() (*domain.Session, error) { return u.SetPlatform(ctx, id, domain.PlatformGoogle) },
		func() (*domain.Session, error) { return u.Next(ctx, id) },
		func() (*domain.Session, error) { return u.SetObjective(ctx, id, "sales") },
		func() (*domain.Session, error) { return u.Next(ctx, id) },
		func() (*domain.Session, error) { return u.SetCampaignType(ctx, id, "search") },
		func() (*domain.Session, error) { return u.Next(ctx, id) },
		func() (*domain.Session, error) {
			return u.UpdateTargeting(ctx, id, wizard.TargetingPatch{
				Locations: []string{"Canada"},
				Ages:      []string{"25-34"},
				Interests: []string{"Technology"},
				Keywords:  []string{"deals"},
			})
		},
		func() (*domain.Session, error) { return u.Next(ctx, id) },
		func() (*domain.Session, error) {
			return u.UpdateCreative(ctx, id, wizard.CreativePatch{
				Headline:     ptr("Big savings"),
				Description:  ptr("Everything half off this week"),
				CallToAction: ptr("Shop Now"),
			})
		},
		func() (*domain.Session, error) { return u.Next(ctx, id) },
		func() (*domain.Session, error) {
			return u.UpdateBudget(ctx, id, wizard.BudgetPatch{BidStrategy: ptr("target_cpa")})
		},
		func() (*domain.Session, error) { return u.Next(ctx, id) },
	}
	for i, step := range steps {
		s, err = step()
		require.NoError(t, err, "step %d", i)
	}
	require.Equal(t, int(wizard.StepResults), s.Step)
	return s
}

func TestCampaignWizardFlow(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	repo := memory.NewSessionRepository()
	u := newCampaignUseCase(repo, nil)

	s := walkToResults(t, u, "")

	var percents []int
	report, err := u.Simulate(ctx, s.ID, nil, func(p int) { percents = append(percents, p) })
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 100}, percents)
	assert.Equal(t, int64(7), report.Seed)
	assert.Equal(t, int64(900), report.Metrics.Impressions)
	assert.Equal(t, int64(23), report.Metrics.Clicks)
	assert.Equal(t, int64(0), report.Metrics.Conversions)
	assert.Len(t, report.Daily, simulation.SeriesDays)

	stored, err := u.GetSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Report)
	assert.Equal(t, *report, *stored.Report)
	assert.Equal(t, 1, stored.Simulations)
}

func TestSimulateRequiresResultsStep(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)

	s, err := u.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = u.Simulate(ctx, s.ID, nil, nil)
	assert.ErrorIs(t, err, port.ErrNotAtResults)
}

func TestSimulateReplaysSeed(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)
	s := walkToResults(t, u, "")

	seed := int64(99)
	a, err := u.Simulate(ctx, s.ID, &seed, nil)
	require.NoError(t, err)
	b, err := u.Simulate(ctx, s.ID, &seed, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(99), a.Seed)
	assert.Equal(t, a.Daily, b.Daily)
}

func TestSimulateCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := memory.NewSessionRepository()
	u := newCampaignUseCase(repo, nil)
	u.progress = ProgressSettings{Interval: time.Hour, Step: 10}
	s := walkToResults(t, u, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := u.Simulate(ctx, s.ID, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	stored, err := repo.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Report)
}

func TestSimulateSeedSourceFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("entropy exhausted")
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)
	u.progress = ProgressSettings{Interval: time.Hour, Step: 10}
	u.engine = simulation.NewEngine(simulation.WithSeedSource(func() (int64, error) { return 0, boom }))
	s := walkToResults(t, u, "")

	_, err := u.Simulate(context.Background(), s.ID, nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestConfigChangeDropsReport(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)
	s := walkToResults(t, u, "")

	_, err := u.Simulate(ctx, s.ID, nil, nil)
	require.NoError(t, err)

	// navigation keeps the report
	back, err := u.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepBudget), back.Step)
	assert.NotNil(t, back.Report)

	changed, err := u.UpdateBudget(ctx, s.ID, wizard.BudgetPatch{Amount: ptr(50.0)})
	require.NoError(t, err)
	assert.Nil(t, changed.Report)
	assert.Equal(t, 50.0, changed.Config.Budget.Amount)
}

func TestEditAtResultsRewindsWizard(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)
	s := walkToResults(t, u, "")

	_, err := u.Simulate(ctx, s.ID, nil, nil)
	require.NoError(t, err)

	switched, err := u.SetPlatform(ctx, s.ID, domain.PlatformMeta)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepObjective), switched.Step)
	assert.Empty(t, switched.Config.Objective)
	assert.Nil(t, switched.Report)

	_, err = u.Simulate(ctx, s.ID, nil, nil)
	assert.ErrorIs(t, err, port.ErrNotAtResults)

	// emptying a required facet from the results step lands on targeting
	s = walkToResults(t, u, "")
	emptied, err := u.UpdateTargeting(ctx, s.ID, wizard.TargetingPatch{
		Locations: []string{},
		Interests: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepTargeting), emptied.Step)

	_, err = u.Simulate(ctx, s.ID, nil, nil)
	assert.ErrorIs(t, err, port.ErrNotAtResults)
}

func TestSimulateRejectsIncompleteStoredConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Platform = domain.PlatformMeta
	repo := mocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Step: int(wizard.StepResults), Config: cfg}, nil)

	u := newCampaignUseCase(repo, nil)

	_, err := u.Simulate(context.Background(), "s1", nil, nil)
	assert.ErrorIs(t, err, wizard.ErrInvalidOption)
}

func TestResetStartsNewCampaign(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)
	s := walkToResults(t, u, "")

	_, err := u.Simulate(ctx, s.ID, nil, nil)
	require.NoError(t, err)

	reset, err := u.Reset(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, reset.ID)
	assert.Equal(t, int(wizard.StepPlatform), reset.Step)
	assert.Equal(t, domain.DefaultConfig(), reset.Config)
	assert.Nil(t, reset.Report)
	assert.Zero(t, reset.Simulations)
}

func TestNextReportsMissingRequirement(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)

	s, err := u.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = u.Next(ctx, s.ID)
	assert.ErrorIs(t, err, wizard.ErrStepIncomplete)

	_, err = u.SetObjective(ctx, s.ID, "sales")
	assert.ErrorIs(t, err, wizard.ErrInvalidOption)

	stored, err := u.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepPlatform), stored.Step)
}

func TestUnknownSession(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil)

	u := newCampaignUseCase(repo, nil)

	_, err := u.SetPlatform(context.Background(), "missing", domain.PlatformMeta)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestRepositoryFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	repo := mocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{ID: "s1", Step: 1, Config: domain.DefaultConfig()}, nil)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Session")).Return(boom)

	u := newCampaignUseCase(repo, nil)

	_, err := u.SetPlatform(context.Background(), "s1", domain.PlatformMeta)
	assert.ErrorIs(t, err, boom)
}

func TestFirstSimulationCountsCampaign(t *testing.T) {
	ctx := context.Background()
	profiles := mocks.NewMockProfileStore(t)
	u := newCampaignUseCase(memory.NewSessionRepository(), profiles)
	s := walkToResults(t, u, "u1")

	profiles.EXPECT().Update(mock.Anything, "u1", mock.Anything).
		RunAndReturn(func(_ context.Context, id string, fn func(*domain.UserProfile) error) (*domain.UserProfile, error) {
			p := &domain.UserProfile{ID: id, CampaignsCreated: 4}
			require.NoError(t, fn(p))
			assert.Equal(t, 5, p.CampaignsCreated)
			assert.Equal(t, fixedNow, p.LastActive)
			return p, nil
		}).Once()

	_, err := u.Simulate(ctx, s.ID, nil, nil)
	require.NoError(t, err)

	// re-running the same campaign does not count it again
	_, err = u.Simulate(ctx, s.ID, nil, nil)
	require.NoError(t, err)
}

func TestProfileFailureDoesNotFailSimulation(t *testing.T) {
	profiles := mocks.NewMockProfileStore(t)
	u := newCampaignUseCase(memory.NewSessionRepository(), profiles)
	s := walkToResults(t, u, "u1")

	profiles.EXPECT().Update(mock.Anything, "u1", mock.Anything).Return(nil, errors.New("disk full"))

	report, err := u.Simulate(context.Background(), s.ID, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, report)
}

// TestConcurrentMutations ensures parallel updates on one session are all
// applied and none is lost between load and save.
func TestConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	u := newCampaignUseCase(memory.NewSessionRepository(), nil)

	s, err := u.StartSession(ctx, "")
	require.NoError(t, err)
	_, err = u.SetPlatform(ctx, s.ID, domain.PlatformGoogle)
	require.NoError(t, err)

	locations := []string{"United States", "Canada", "United Kingdom", "Australia", "Germany"}
	var wg sync.WaitGroup
	for _, loc := range locations {
		wg.Add(1)
		go func(loc string) {
			defer wg.Done()
			_, err := u.apply(ctx, s.ID, func(st wizard.State) (wizard.State, error) {
				return st.WithTargeting(wizard.TargetingPatch{
					Locations: append(append([]string(nil), st.Config.Targeting.Locations...), loc),
				})
			})
			assert.NoError(t, err)
		}(loc)
	}
	wg.Wait()

	stored, err := u.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, locations, stored.Config.Targeting.Locations)
}

// TestCountingRacesProfileEdits ensures campaign counting and profile edits
// on the same owner do not overwrite each other.
func TestCountingRacesProfileEdits(t *testing.T) {
	ctx := context.Background()
	profiles := memory.NewProfileStore()
	require.NoError(t, profiles.Put(ctx, domain.UserProfile{ID: "u1", Name: "Dana", Email: "dana@example.com"}))

	campaigns := newCampaignUseCase(memory.NewSessionRepository(), profiles)
	people := newProfileUseCase(profiles)

	const sessions = 8
	ids := make([]string, sessions)
	for i := range ids {
		ids[i] = walkToResults(t, campaigns, "u1").ID
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_, err := campaigns.Simulate(ctx, id, nil, nil)
			assert.NoError(t, err)
		}(id)
		go func(i int) {
			defer wg.Done()
			_, err := people.Update(ctx, "u1", port.ProfilePatch{Company: ptr(fmt.Sprintf("Acme %d", i))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p, err := profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, sessions, p.CampaignsCreated)
	assert.Contains(t, p.Company, "Acme ")
}
