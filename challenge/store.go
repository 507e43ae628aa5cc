package challenge

import (
	"context"

	"github.com/fury1991/my-sport-challenge/standings"
)

// Store is the read contract against the hosted document database.
// All reads are namespace-scoped by challenge key; the service never
// writes.
type Store interface {
	// ListChallenges returns every selectable challenge.
	ListChallenges(ctx context.Context) ([]Info, error)

	// CurrentChallenge returns the key of the challenge the dashboard
	// should open with.
	CurrentChallenge(ctx context.Context) (string, error)

	// GetMetadata returns the challenge status document, or nil when
	// the document is absent.
	GetMetadata(ctx context.Context, challengeKey string) (*Metadata, error)

	// ListAthletes returns the participants of a challenge, without
	// activities.
	ListAthletes(ctx context.Context, challengeKey string) ([]standings.Athlete, error)

	// ListActivities returns one athlete's complete activity set.
	// Same-day order is the store's document order.
	ListActivities(ctx context.Context, challengeKey string, athleteID string) ([]standings.Activity, error)
}
