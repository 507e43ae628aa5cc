package challenge_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/scoring"
	"github.com/fury1991/my-sport-challenge/srvcerror"
	"github.com/fury1991/my-sport-challenge/standings"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func newAutumnStore(t *testing.T) *challenge.InMemStore {
	t.Helper()
	store := challenge.NewInMemStore()
	store.AddChallenge(
		challenge.Info{Key: "herbst-2024", Label: "Herbst-Challenge 2024"},
		&challenge.Metadata{
			StartDate: day(2024, 9, 5),
			EndDate:   day(2024, 11, 30),
		},
	)
	store.AddAthlete("herbst-2024", standings.Athlete{
		ID:   "a1",
		Name: "Anna",
		Activities: []standings.Activity{
			{Date: day(2024, 9, 6), Kind: scoring.Run, Distance: 5},
			{Date: day(2024, 9, 10), Kind: scoring.Bike, Distance: 20},
		},
	})
	return store
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates the full challenge", func(t *testing.T) {
		srvc := challenge.NewService(newAutumnStore(t))

		snap, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)

		assert.Equal(t, "Herbst-Challenge 2024", snap.Challenge.Label)
		require.NotNil(t, snap.Metadata)
		assert.False(t, snap.Metadata.IsComplete)

		rows := snap.Standings.Leaderboard()
		require.Len(t, rows, 1)
		assert.Equal(t, "Anna", rows[0].Name)
		assert.Equal(t, 35.0, rows[0].TotalPoints)

		chart := snap.Standings.ChartSeries()
		require.Len(t, chart.Checkpoints, 3, "origin day plus two activity days")
	})

	t.Run("Missing metadata is not an error", func(t *testing.T) {
		store := challenge.NewInMemStore()
		store.AddChallenge(challenge.Info{Key: "bare", Label: "Bare"}, nil)
		srvc := challenge.NewService(store)

		snap, err := srvc.Snapshot(ctx, "bare")
		require.NoError(t, err)
		assert.Nil(t, snap.Metadata)
	})

	t.Run("Unknown challenge key", func(t *testing.T) {
		srvc := challenge.NewService(newAutumnStore(t))

		_, err := srvc.Snapshot(ctx, "does-not-exist")
		require.Error(t, err)

		srvcErr := &srvcerror.Error{}
		require.ErrorAs(t, err, &srvcErr)
		assert.Equal(t, challenge.ErrCodeChallengeNotFound, srvcErr.Code())
	})

	t.Run("Unchanged selection reuses the snapshot", func(t *testing.T) {
		store := &countingStore{Store: newAutumnStore(t)}
		srvc := challenge.NewService(store)

		first, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		calls := store.athleteCalls()

		second, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, calls, store.athleteCalls(), "no refetch for the same selection")
	})

	t.Run("Store updates reach later snapshots", func(t *testing.T) {
		store := challenge.NewInMemStore()
		store.AddChallenge(challenge.Info{Key: "herbst-2024", Label: "Herbst-Challenge 2024"}, nil)
		srvc := challenge.NewService(store)
		srvc.SetCacheTTL(0) // query the store on every call

		before, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		assert.Empty(t, before.Standings.Leaderboard())

		store.AddAthlete("herbst-2024", standings.Athlete{
			ID:   "a1",
			Name: "Anna",
			Activities: []standings.Activity{
				{Date: day(2024, 9, 6), Kind: scoring.Run, Distance: 5},
			},
		})

		after, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		rows := after.Standings.Leaderboard()
		require.Len(t, rows, 1)
		assert.Equal(t, "Anna", rows[0].Name)
		assert.Equal(t, 15.0, rows[0].TotalPoints)
	})

	t.Run("Expired cache is refetched", func(t *testing.T) {
		store := &countingStore{Store: newAutumnStore(t)}
		srvc := challenge.NewService(store)
		srvc.SetCacheTTL(time.Nanosecond)

		_, err := srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		calls := store.athleteCalls()

		time.Sleep(time.Millisecond)

		_, err = srvc.Snapshot(ctx, "herbst-2024")
		require.NoError(t, err)
		assert.Greater(t, store.athleteCalls(), calls,
			"a snapshot older than the TTL must be rebuilt from the store")
	})

	t.Run("Switch refetches even for the same key", func(t *testing.T) {
		store := &countingStore{Store: newAutumnStore(t)}
		srvc := challenge.NewService(store)

		_, err := srvc.Switch(ctx, "herbst-2024")
		require.NoError(t, err)
		calls := store.athleteCalls()

		_, err = srvc.Switch(ctx, "herbst-2024")
		require.NoError(t, err)
		assert.Greater(t, store.athleteCalls(), calls)
	})
}

func TestFetchFailure(t *testing.T) {
	ctx := context.Background()

	store := &failingStore{Store: newAutumnStore(t), failActivities: true}
	srvc := challenge.NewService(store)

	_, err := srvc.Snapshot(ctx, "herbst-2024")
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, challenge.ErrCodeFetchFailed, srvcErr.Code())
	assert.ErrorContains(t, srvcErr.Debug(), "store down")
}

// A fetch that resolves after a newer switch must not overwrite the
// newer selection's state.
func TestStaleFetchIsDiscarded(t *testing.T) {
	ctx := context.Background()

	store := newAutumnStore(t)
	store.AddChallenge(
		challenge.Info{Key: "fruehjahr-2024", Label: "Frühjahrs-Challenge 2024"},
		&challenge.Metadata{StartDate: day(2024, 3, 1), IsComplete: true},
	)

	gated := &gatedStore{Store: store, gate: make(chan struct{})}
	srvc := challenge.NewService(gated)

	// Old selection: blocks on the athlete fetch until released.
	gated.setBlocking("fruehjahr-2024")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := srvc.Switch(ctx, "fruehjahr-2024")
		assert.NoError(t, err)
	}()

	gated.waitUntilBlocked(t)

	// Newer selection completes first.
	fresh, err := srvc.Switch(ctx, "herbst-2024")
	require.NoError(t, err)
	assert.Equal(t, "herbst-2024", fresh.Challenge.Key)

	// Release the stale fetch and let it finish.
	close(gated.gate)
	<-done

	// The cached snapshot must still be the newer selection.
	cached, err := srvc.Snapshot(ctx, "herbst-2024")
	require.NoError(t, err)
	assert.Same(t, fresh, cached, "stale fetch must not evict the newer snapshot")
}

// countingStore counts ListAthletes calls.
type countingStore struct {
	challenge.Store
	mu    sync.Mutex
	calls int
}

func (s *countingStore) ListAthletes(ctx context.Context, key string) ([]standings.Athlete, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.Store.ListAthletes(ctx, key)
}

func (s *countingStore) athleteCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// failingStore fails selected reads.
type failingStore struct {
	challenge.Store
	failActivities bool
}

func (s *failingStore) ListActivities(ctx context.Context, key, athleteID string) ([]standings.Activity, error) {
	if s.failActivities {
		return nil, errors.New("store down")
	}
	return s.Store.ListActivities(ctx, key, athleteID)
}

// gatedStore blocks ListAthletes for one challenge key until its gate
// closes.
type gatedStore struct {
	challenge.Store
	mu       sync.Mutex
	blockKey string
	blocked  bool
	gate     chan struct{}
}

func (s *gatedStore) setBlocking(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blockKey = key
}

func (s *gatedStore) waitUntilBlocked(t *testing.T) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		s.mu.Lock()
		blocked := s.blocked
		s.mu.Unlock()
		if blocked {
			return
		}
		select {
		case <-deadline:
			t.Fatal("store never blocked")
		case <-time.After(time.Millisecond):
		}
	}
}

func (s *gatedStore) ListAthletes(ctx context.Context, key string) ([]standings.Athlete, error) {
	s.mu.Lock()
	shouldBlock := key == s.blockKey
	if shouldBlock {
		s.blocked = true
	}
	s.mu.Unlock()
	if shouldBlock {
		<-s.gate
	}
	return s.Store.ListAthletes(ctx, key)
}
