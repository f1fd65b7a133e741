package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"adsim/internal/core/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *ProfileStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestProfileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	want := domain.UserProfile{
		ID:               "u1",
		Name:             "Dana Reyes",
		Email:            "dana@example.com",
		Company:          "Acme",
		CreatedAt:        at,
		LastActive:       at.Add(time.Hour),
		CampaignsCreated: 3,
	}
	require.NoError(t, store.Put(ctx, want))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Put(ctx, domain.UserProfile{ID: "u1", Name: "Old"}))
	require.NoError(t, store.Put(ctx, domain.UserProfile{ID: "u1", Name: "New", CampaignsCreated: 1}))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, 1, got.CampaignsCreated)

	var rows int
	require.NoError(t, store.sqlDB.QueryRow(`SELECT count(*) FROM kv WHERE key = 'user:u1'`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestProfileStoreMissingAndDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	got, err := store.Get(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put(ctx, domain.UserProfile{ID: "u1", Name: "Dana"}))
	require.NoError(t, store.Delete(ctx, "u1"))
	require.NoError(t, store.Delete(ctx, "u1"))

	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profiles.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, domain.UserProfile{ID: "u1", Name: "Dana"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dana", got.Name)
}

func TestProfileStoreRequiresID(t *testing.T) {
	store := openTestStore(t)
	require.Error(t, store.Put(context.Background(), domain.UserProfile{Name: "anon"}))
}

func TestProfileStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	got, err := store.Update(ctx, "ghost", func(*domain.UserProfile) error {
		t.Fatal("fn called for a missing profile")
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put(ctx, domain.UserProfile{ID: "u1", Name: "Dana"}))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "u1", func(p *domain.UserProfile) error {
				p.CampaignsCreated++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	boom := errors.New("rejected")
	_, err = store.Update(ctx, "u1", func(p *domain.UserProfile) error {
		p.Name = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.CampaignsCreated)
	assert.Equal(t, "Dana", got.Name)
}
