package challenge

import (
	"context"
	"fmt"
	"sync"

	"github.com/fury1991/my-sport-challenge/standings"
)

// InMemStore is a Store backed by plain maps. It serves tests and
// local demos; the production store lives in ddbstore.
type InMemStore struct {
	mu         sync.RWMutex
	challenges []Info
	current    string
	metadata   map[string]*Metadata
	athletes   map[string][]standings.Athlete
	activities map[string]map[string][]standings.Activity
}

var _ Store = (*InMemStore)(nil)

func NewInMemStore() *InMemStore {
	return &InMemStore{
		metadata:   make(map[string]*Metadata),
		athletes:   make(map[string][]standings.Athlete),
		activities: make(map[string]map[string][]standings.Activity),
	}
}

// AddChallenge registers a challenge; meta may be nil.
func (s *InMemStore) AddChallenge(info Info, meta *Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges = append(s.challenges, info)
	if meta != nil {
		s.metadata[info.Key] = meta
	}
	if s.current == "" {
		s.current = info.Key
	}
}

func (s *InMemStore) SetCurrent(challengeKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = challengeKey
}

// AddAthlete registers an athlete and their activities under a
// challenge. Activity order is preserved as fetch order.
func (s *InMemStore) AddAthlete(challengeKey string, athlete standings.Athlete) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activities := athlete.Activities
	athlete.Activities = nil
	s.athletes[challengeKey] = append(s.athletes[challengeKey], athlete)
	if s.activities[challengeKey] == nil {
		s.activities[challengeKey] = make(map[string][]standings.Activity)
	}
	s.activities[challengeKey][athlete.ID] = activities
}

func (s *InMemStore) ListChallenges(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Info(nil), s.challenges...), nil
}

func (s *InMemStore) CurrentChallenge(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return "", fmt.Errorf("current challenge pointer is not set")
	}
	return s.current, nil
}

func (s *InMemStore) GetMetadata(ctx context.Context, challengeKey string) (*Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata[challengeKey], nil
}

func (s *InMemStore) ListAthletes(ctx context.Context, challengeKey string) ([]standings.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]standings.Athlete(nil), s.athletes[challengeKey]...), nil
}

func (s *InMemStore) ListActivities(ctx context.Context, challengeKey string, athleteID string) ([]standings.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]standings.Activity(nil), s.activities[challengeKey][athleteID]...), nil
}
