package challenge

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/fury1991/my-sport-challenge/logger"
	"github.com/fury1991/my-sport-challenge/standings"
)

// Snapshot is the fully aggregated view of one challenge. It is
// immutable; switching challenges builds a fresh one and discards
// this one.
type Snapshot struct {
	Challenge Info
	Metadata  *Metadata
	Standings *standings.Standings
}

// Service coordinates challenge selection: it fetches a challenge's
// athletes and activities from the store, aggregates them, and caches
// the resulting snapshot briefly. The cache only smooths bursts of
// requests for the same view; it expires after cacheTTL so store
// updates keep reaching the dashboard (the store stays the single
// source of truth, queried fresh for every render pass).
//
// Fetches for a superseded selection are ignored: every Switch bumps
// a generation counter and a fetch only installs its snapshot if its
// generation is still the latest, so two overlapping switches
// resolving out of order can never leave stale state behind.
type Service struct {
	store    Store
	cacheTTL time.Duration

	mu        sync.Mutex
	gen       uint64
	activeKey string
	snap      *Snapshot
	fetchedAt time.Time
}

const defaultCacheTTL = 30 * time.Second

func NewService(store Store) *Service {
	return &Service{store: store, cacheTTL: defaultCacheTTL}
}

// SetCacheTTL adjusts how long a snapshot may be served before it is
// refetched. Zero or negative disables caching entirely: every
// Snapshot call then queries the store.
func (s *Service) SetCacheTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheTTL = ttl
}

// Challenges lists every selectable challenge.
func (s *Service) Challenges(ctx context.Context) ([]Info, error) {
	infos, err := s.store.ListChallenges(ctx)
	if err != nil {
		return nil, ErrFetchFailed().SetDebug(err)
	}
	return infos, nil
}

// CurrentChallenge returns the key the dashboard should open with.
func (s *Service) CurrentChallenge(ctx context.Context) (string, error) {
	key, err := s.store.CurrentChallenge(ctx)
	if err != nil {
		return "", ErrFetchFailed().SetDebug(err)
	}
	return key, nil
}

// Snapshot returns the aggregated view for the given challenge,
// reusing the cached snapshot while the selection is unchanged and
// the cache has not expired.
func (s *Service) Snapshot(ctx context.Context, challengeKey string) (*Snapshot, error) {
	s.mu.Lock()
	fresh := s.snap != nil &&
		s.activeKey == challengeKey &&
		s.cacheTTL > 0 &&
		time.Since(s.fetchedAt) < s.cacheTTL
	if fresh {
		snap := s.snap
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	return s.Switch(ctx, challengeKey)
}

// Switch selects a challenge: all previously aggregated state is
// discarded and the challenge is fetched and aggregated from scratch.
func (s *Service) Switch(ctx context.Context, challengeKey string) (*Snapshot, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.activeKey = challengeKey
	s.snap = nil
	s.mu.Unlock()

	ctx = logger.WithChallenge(ctx, challengeKey)
	snap, err := s.buildSnapshot(ctx, challengeKey)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// A newer switch superseded this fetch; hand the snapshot to
		// the caller but do not install it.
		logger.FromContext(ctx).Info("discarding superseded snapshot")
		return snap, nil
	}
	s.snap = snap
	s.fetchedAt = time.Now()
	return snap, nil
}

// buildSnapshot fetches everything the aggregation needs before
// aggregating once: no athlete is ever scored on a partially fetched
// activity set.
func (s *Service) buildSnapshot(ctx context.Context, challengeKey string) (*Snapshot, error) {
	infos, err := s.store.ListChallenges(ctx)
	if err != nil {
		return nil, ErrFetchFailed().SetDebug(err)
	}
	idx := slices.IndexFunc(infos, func(i Info) bool { return i.Key == challengeKey })
	if idx == -1 {
		return nil, ErrChallengeNotFound()
	}
	info := infos[idx]

	meta, err := s.store.GetMetadata(ctx, challengeKey)
	if err != nil {
		return nil, ErrFetchFailed().SetDebug(err)
	}

	athletes, err := s.store.ListAthletes(ctx, challengeKey)
	if err != nil {
		return nil, ErrFetchFailed().SetDebug(err)
	}
	for i := range athletes {
		activities, err := s.store.ListActivities(ctx, challengeKey, athletes[i].ID)
		if err != nil {
			return nil, ErrFetchFailed().SetDebug(err)
		}
		athletes[i].Activities = activities
	}

	origin := originDate(meta, athletes)
	snap := &Snapshot{
		Challenge: info,
		Metadata:  meta,
		Standings: standings.Aggregate(athletes, origin),
	}

	logger.FromContext(ctx).Info("challenge aggregated",
		"athletes", len(athletes),
		"origin", origin)

	return snap, nil
}

// originDate picks the first checkpoint of the chart axis: the
// challenge start when metadata exists, otherwise the earliest
// activity day, otherwise today.
func originDate(meta *Metadata, athletes []standings.Athlete) time.Time {
	if meta != nil && !meta.StartDate.IsZero() {
		return meta.StartDate
	}
	var earliest time.Time
	for _, a := range athletes {
		for _, act := range a.Activities {
			if earliest.IsZero() || act.Date.Before(earliest) {
				earliest = act.Date
			}
		}
	}
	if earliest.IsZero() {
		return time.Now()
	}
	return earliest
}
