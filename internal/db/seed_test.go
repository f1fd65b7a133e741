package db

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adsim/internal/core/domain"
	"adsim/internal/core/port/mocks"
	"adsim/internal/core/simulation"
	"adsim/internal/core/wizard"
)

func TestSeedCreatesCompleteSessions(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	var saved []*domain.Session
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Session")).
		RunAndReturn(func(_ context.Context, s *domain.Session) error {
			saved = append(saved, s)
			return nil
		}).
		Times(DemoSessions)

	engine := simulation.NewEngine(simulation.WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, Seed(context.Background(), repo, engine, rand.New(rand.NewSource(1))))
	require.Len(t, saved, DemoSessions)

	ids := map[string]bool{}
	for i, s := range saved {
		assert.False(t, ids[s.ID], "duplicate id %s", s.ID)
		ids[s.ID] = true
		assert.Equal(t, int(wizard.StepResults), s.Step)

		// every seeded config must survive the wizard on its own
		_, err := wizard.Complete(s.Config)
		assert.NoError(t, err, "session %d", i)

		if i%2 == 0 {
			require.NotNil(t, s.Report, "session %d", i)
			assert.Equal(t, s.Config.Platform, s.Report.Platform)
			assert.Equal(t, 1, s.Simulations)
		} else {
			assert.Nil(t, s.Report, "session %d", i)
		}
	}
	assert.Equal(t, domain.PlatformGoogle, saved[0].Config.Platform)
	assert.Equal(t, domain.PlatformMeta, saved[1].Config.Platform)
}

func TestSeedIsReproducible(t *testing.T) {
	a := demoConfig(rand.New(rand.NewSource(5)), domain.PlatformMeta, 1)
	b := demoConfig(rand.New(rand.NewSource(5)), domain.PlatformMeta, 1)
	assert.Equal(t, a, b)
	assert.Empty(t, a.Targeting.Keywords)
	assert.NotEmpty(t, a.Targeting.Behaviors)
}
